package domain

import "time"

type Company struct {
	ID                         uint
	CompanyName                string
	BusinessEmail              string
	PasswordHash               string
	EmailVerified              bool
	OtpCode                    *string
	OtpExpiresAt               *time.Time
	KycStatus                  *string
	BusinessRegistrationNumber *string
	BusinessAddress            *string
	ContactPersonName          *string
	ContactPersonPhone         *string
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

const (
	KycStatusPending  = "pending"
	KycStatusApproved = "approved"
	KycStatusRejected = "rejected"
)

// IsKycApproved reports whether the company may create orders.
func (c *Company) IsKycApproved() bool {
	return c.KycStatus != nil && *c.KycStatus == KycStatusApproved
}

// HasOtp reports whether an OTP is currently on file. Code and expiry
// are either both present or both null.
func (c *Company) HasOtp() bool {
	return c.OtpCode != nil && c.OtpExpiresAt != nil
}
