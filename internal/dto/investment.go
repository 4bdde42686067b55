package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvestRequestDTO struct {
	ProjectID     int             `json:"project_id" validate:"required" example:"7"`
	Amount        decimal.Decimal `json:"amount" validate:"required" example:"3000"`
	PaymentMethod string          `json:"payment_method" example:"wallet"`
	ExternalRef   string          `json:"external_reference,omitempty"`
}

type ValidateInvestmentRequestDTO struct {
	ProjectID     int             `json:"project_id" validate:"required" example:"7"`
	Amount        decimal.Decimal `json:"amount" validate:"required" example:"3000"`
	PaymentMethod string          `json:"payment_method" example:"wallet"`
}

type ValidateInvestmentResponseDTO struct {
	Valid   bool   `json:"valid" example:"true"`
	Message string `json:"message,omitempty"`
}

type InvestmentResponseDTO struct {
	ID            int             `json:"id" example:"42"`
	ProjectID     int             `json:"project_id" example:"7"`
	Amount        decimal.Decimal `json:"amount" example:"3000"`
	Currency      string          `json:"currency" example:"TND"`
	PaymentMethod string          `json:"payment_method" example:"wallet"`
	Status        string          `json:"status" example:"confirmed"`
	TransactionID *int            `json:"transaction_id,omitempty" example:"101"`
	InvestedAt    *time.Time      `json:"invested_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type ProjectResponseDTO struct {
	ID                int             `json:"id" example:"7"`
	Name              string          `json:"name" example:"Marina Bay Residence"`
	GoalAmount        decimal.Decimal `json:"goal_amount" example:"250000"`
	CurrentAmount     decimal.Decimal `json:"current_amount" example:"120000"`
	MinimumInvestment decimal.Decimal `json:"minimum_investment" example:"500"`
	Currency          string          `json:"currency" example:"TND"`
	FundingStatus     string          `json:"funding_status" example:"open"`
}

// PaymentWebhookDTO is the notification the external payment gateway posts
// after the investor completes or abandons checkout.
type PaymentWebhookDTO struct {
	InvestmentID int    `json:"investment_id" validate:"required" example:"42"`
	Success      bool   `json:"success" example:"true"`
	Reference    string `json:"reference,omitempty"`
}
