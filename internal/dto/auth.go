package dto

type RegisterRequestDTO struct {
	Login        string `json:"login" validate:"required,min=3,max=50"`
	Password     string `json:"password" validate:"required,min=8"`
	Currency     string `json:"currency" example:"TND"`
	ReferralCode string `json:"referral_code,omitempty" example:"a1b2c3d4e5f6"`
}

type RegisterResponseDTO struct {
	Message      string `json:"message"`
	ReferralCode string `json:"referral_code" example:"a1b2c3d4e5f6"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type ApproveResponseDTO struct {
	Message  string `json:"message"`
	Verified bool   `json:"verified" example:"true"`
}
