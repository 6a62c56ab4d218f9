package dto

type SubmitKycRequest struct {
	BusinessEmail              string `json:"business_email"`
	BusinessRegistrationNumber string `json:"business_registration_number"`
	BusinessAddress            string `json:"business_address"`
	ContactPersonName          string `json:"contact_person_name"`
	ContactPersonPhone         string `json:"contact_person_phone"`
}
