package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyTND Currency = "TND"
	CurrencyEUR Currency = "EUR"
)

// Role is the explicit set of account roles. Unknown or missing role values
// resolve to RoleInvestor, the documented default.
type Role string

const (
	RoleInvestor Role = "investor"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a stored role name to a Role, falling back to RoleInvestor.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleInvestor
	}
}

type User struct {
	ID            int             `db:"id"`
	Login         string          `db:"login"`
	PasswordHash  string          `db:"password_hash"`
	Role          Role            `db:"role"`
	Currency      Currency        `db:"currency"`
	Verified      bool            `db:"verified"`
	ReferralCode  string          `db:"referral_code"`
	InvestedTotal decimal.Decimal `db:"invested_total"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Wallet is the per-user store of spendable cash and reward balances. It is
// mutated only through the ledger service, under a row lock.
type Wallet struct {
	ID                int             `db:"id"`
	UserID            int             `db:"user_id"`
	CashBalance       decimal.Decimal `db:"cash_balance"`
	RewardsBalance    decimal.Decimal `db:"rewards_balance"`
	Currency          Currency        `db:"currency"`
	LastTransactionAt *time.Time      `db:"last_transaction_at"`
}

// Balance returns the balance held on the given lane.
func (w *Wallet) Balance(lane BalanceLane) decimal.Decimal {
	if lane == LaneRewards {
		return w.RewardsBalance
	}
	return w.CashBalance
}

type TransactionKind string

const (
	KindDeposit       TransactionKind = "deposit"
	KindWithdrawal    TransactionKind = "withdrawal"
	KindInvestment    TransactionKind = "investment"
	KindReward        TransactionKind = "reward"
	KindReferralBonus TransactionKind = "referral_bonus"
	KindRentPayout    TransactionKind = "rent_payout"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

type BalanceLane string

const (
	LaneCash    BalanceLane = "cash"
	LaneRewards BalanceLane = "rewards"
)

// Attestation is the best-effort chain receipt attached to a completed
// transaction. It never affects ledger correctness.
type Attestation struct {
	Hash            string `db:"attestation_hash"`
	BlockNumber     int64  `db:"block_number"`
	GasUsed         string `db:"gas_used"`
	ChainStatus     string `db:"chain_status"`
	ContractAddress string `db:"contract_address"`
	IsMock          bool   `db:"is_mock"`
}

// Transaction is an immutable, append-only ledger record. Once completed,
// its signed amount and lane never change.
type Transaction struct {
	ID          int               `db:"id"`
	UserID      int               `db:"user_id"`
	WalletID    int               `db:"wallet_id"`
	Kind        TransactionKind   `db:"kind"`
	Amount      decimal.Decimal   `db:"amount"`
	Currency    Currency          `db:"currency"`
	Status      TransactionStatus `db:"status"`
	Lane        BalanceLane       `db:"lane"`
	Description string            `db:"description"`
	Reference   string            `db:"reference"`
	Metadata    map[string]any    `db:"metadata"`
	Attestation Attestation
	ProcessedAt *time.Time `db:"processed_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

type InvestmentStatus string

const (
	InvestmentPending         InvestmentStatus = "pending"
	InvestmentAwaitingPayment InvestmentStatus = "awaiting_external_payment"
	InvestmentConfirmed       InvestmentStatus = "confirmed"
	InvestmentFailed          InvestmentStatus = "failed"
)

type Investment struct {
	ID            int              `db:"id"`
	UserID        int              `db:"user_id"`
	ProjectID     int              `db:"project_id"`
	Amount        decimal.Decimal  `db:"amount"`
	Currency      Currency         `db:"currency"`
	PaymentMethod string           `db:"payment_method"`
	Status        InvestmentStatus `db:"status"`
	TransactionID *int             `db:"transaction_id"`
	ExternalRef   *string          `db:"external_reference"`
	InvestedAt    *time.Time       `db:"invested_at"`
	CreatedAt     time.Time        `db:"created_at"`
}

type FundingStatus string

const (
	FundingOpen    FundingStatus = "open"
	FundingSoldOut FundingStatus = "sold_out"
)

// Project carries the funding aggregate the settlement engine mutates.
type Project struct {
	ID                int             `db:"id"`
	Name              string          `db:"name"`
	GoalAmount        decimal.Decimal `db:"goal_amount"`
	CurrentAmount     decimal.Decimal `db:"current_amount"`
	MinimumInvestment decimal.Decimal `db:"minimum_investment"`
	Currency          Currency        `db:"currency"`
	FundingStatus     FundingStatus   `db:"funding_status"`
	CreatedAt         time.Time       `db:"created_at"`
}

// Remaining returns the capacity left before the funding goal.
func (p *Project) Remaining() decimal.Decimal {
	return p.GoalAmount.Sub(p.CurrentAmount)
}

type ReferralStatus string

// Referral status only moves forward: pending -> qualified -> rewarded.
// The current value is the single source of truth for whether a reward
// has been paid, and therefore the idempotence gate for the cascade.
const (
	ReferralPending   ReferralStatus = "pending"
	ReferralQualified ReferralStatus = "qualified"
	ReferralRewarded  ReferralStatus = "rewarded"
)

// RewardCandidate is a qualified referral whose referee has a confirmed
// investment, making it eligible for a referrer-reward retry.
type RewardCandidate struct {
	ReferralID        int             `db:"id"`
	RefereeID         int             `db:"referee_id"`
	LargestInvestment decimal.Decimal `db:"largest_investment"`
}

type Referral struct {
	ID                     int             `db:"id"`
	ReferrerID             int             `db:"referrer_id"`
	RefereeID              int             `db:"referee_id"`
	Status                 ReferralStatus  `db:"status"`
	RefereeReward          decimal.Decimal `db:"referee_reward"`
	ReferrerReward         decimal.Decimal `db:"referrer_reward"`
	Currency               Currency        `db:"currency"`
	RefereeInvestmentTotal decimal.Decimal `db:"referee_investment_amount"`
	QualifiedAt            *time.Time      `db:"qualified_at"`
	RewardedAt             *time.Time      `db:"rewarded_at"`
	CreatedAt              time.Time       `db:"created_at"`
}
