package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReferralResponseDTO struct {
	ID             int             `json:"id" example:"3"`
	RefereeID      int             `json:"referee_id" example:"15"`
	Status         string          `json:"status" example:"qualified"`
	RefereeReward  decimal.Decimal `json:"referee_reward" example:"25"`
	ReferrerReward decimal.Decimal `json:"referrer_reward" example:"25"`
	Currency       string          `json:"currency" example:"TND"`
	QualifiedAt    *time.Time      `json:"qualified_at,omitempty"`
	RewardedAt     *time.Time      `json:"rewarded_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
