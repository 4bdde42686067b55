package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponseDTO struct {
	CashBalance       decimal.Decimal `json:"cash_balance" example:"1500.5"`
	RewardsBalance    decimal.Decimal `json:"rewards_balance" example:"25"`
	Currency          string          `json:"currency" example:"TND"`
	LastTransactionAt *time.Time      `json:"last_transaction_at,omitempty"`
}

type DepositRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" example:"500"`
	Description string          `json:"description,omitempty" example:"Bank transfer"`
	Reference   string          `json:"reference,omitempty" example:"79927398713"`
}

type WithdrawRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" example:"200"`
	Description string          `json:"description,omitempty"`
	Reference   string          `json:"reference,omitempty" example:"79927398713"`
}

type AttestationDTO struct {
	Hash        string `json:"hash,omitempty" example:"0x3f6c..."`
	BlockNumber int64  `json:"block_number,omitempty" example:"17345678"`
	ChainStatus string `json:"chain_status,omitempty" example:"confirmed"`
	IsMock      bool   `json:"is_mock" example:"true"`
}

type TransactionResponseDTO struct {
	ID          int             `json:"id" example:"101"`
	Kind        string          `json:"kind" example:"deposit"`
	Amount      decimal.Decimal `json:"amount" example:"500"`
	Currency    string          `json:"currency" example:"TND"`
	Status      string          `json:"status" example:"completed"`
	Lane        string          `json:"lane" example:"cash"`
	Description string          `json:"description,omitempty"`
	Reference   string          `json:"reference,omitempty"`
	Attestation AttestationDTO  `json:"attestation"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ReconciliationResponseDTO struct {
	CashBalance    decimal.Decimal `json:"cash_balance" example:"1500.5"`
	CashLedger     decimal.Decimal `json:"cash_ledger" example:"1500.5"`
	RewardsBalance decimal.Decimal `json:"rewards_balance" example:"25"`
	RewardsLedger  decimal.Decimal `json:"rewards_ledger" example:"25"`
	Consistent     bool            `json:"consistent" example:"true"`
}

type VerifyAttestationResponseDTO struct {
	Hash          string `json:"hash" example:"0x3f6c..."`
	Status        string `json:"status" example:"confirmed"`
	Confirmations int    `json:"confirmations" example:"6"`
	IsMock        bool   `json:"is_mock" example:"true"`
}
