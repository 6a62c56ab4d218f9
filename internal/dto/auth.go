package dto

type RegisterRequest struct {
	CompanyName   string `json:"company_name"`
	BusinessEmail string `json:"business_email"`
	Password      string `json:"password"`
}

type RegisterResponse struct {
	Message   string `json:"message"`
	CompanyID uint   `json:"company_id"`
}

type VerifyOtpRequest struct {
	BusinessEmail string `json:"business_email"`
	OtpCode       string `json:"otp_code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
