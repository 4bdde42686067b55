// Package ledgerservice is the single writer of wallet balances. Every
// balance-affecting event runs through ApplyMutation, which couples the
// immutable transaction record and the balance update in one atomic unit.
package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/korpor/fundledger/internal/attestation"
	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock.go -package=ledgerservice

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	Create(ctx context.Context, userID int, currency domain.Currency) (*domain.Wallet, error)
	UpdateBalances(ctx context.Context, wallet *domain.Wallet) error
}

type TransactionRepo interface {
	CreatePending(ctx context.Context, t *domain.Transaction) error
	Complete(ctx context.Context, id int, receipt domain.Attestation, processedAt time.Time) error
	ListByUserID(ctx context.Context, userID int, kind domain.TransactionKind, status domain.TransactionStatus, limit, offset int) ([]domain.Transaction, error)
	SumCompletedByLane(ctx context.Context, walletID int, lane domain.BalanceLane) (decimal.Decimal, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

// Attestor is the consumer-side view of the attestation gateway. Attest never
// fails; Verify is audit-only.
type Attestor interface {
	Attest(ctx context.Context, kind domain.TransactionKind, payload map[string]any) domain.Attestation
	Verify(ctx context.Context, hash string) (*attestation.Verification, error)
}

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUserNotFound        = errors.New("user not found")
)

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	userRepo        UserRepo
	attestor        Attestor
	txManager       pg.TXManager
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, userRepo UserRepo, attestor Attestor, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		attestor:        attestor,
		txManager:       txManager,
	}
}

// ApplyMutation records one signed balance mutation. Inside a single atomic
// unit it lazily creates the wallet, inserts the pending ledger row, enriches
// it with an attestation receipt, completes it and moves the lane balance by
// amount. Negative mutations are rejected up front when the lane cannot cover
// them, before any row is written.
func (s *Service) ApplyMutation(ctx context.Context, userID int, kind domain.TransactionKind, amount decimal.Decimal, lane domain.BalanceLane, description, reference string, metadata map[string]any) (*domain.Transaction, error) {
	if amount.IsZero() {
		return nil, ErrInvalidAmount
	}

	var result *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.lockOrCreateWallet(ctx, userID)
		if err != nil {
			return err
		}

		if amount.IsNegative() && wallet.Balance(lane).LessThan(amount.Neg()) {
			return ErrInsufficientBalance
		}

		t := &domain.Transaction{
			UserID:      userID,
			WalletID:    wallet.ID,
			Kind:        kind,
			Amount:      amount,
			Currency:    wallet.Currency,
			Lane:        lane,
			Description: description,
			Reference:   reference,
			Metadata:    metadata,
		}
		if err := s.transactionRepo.CreatePending(ctx, t); err != nil {
			return err
		}

		receipt := s.attestor.Attest(ctx, kind, map[string]any{
			"userId":        userID,
			"transactionId": t.ID,
			"amount":        amount.String(),
			"currency":      wallet.Currency,
		})

		now := time.Now()
		if err := s.transactionRepo.Complete(ctx, t.ID, receipt, now); err != nil {
			return err
		}

		switch lane {
		case domain.LaneRewards:
			wallet.RewardsBalance = wallet.RewardsBalance.Add(amount)
		default:
			wallet.CashBalance = wallet.CashBalance.Add(amount)
		}
		wallet.LastTransactionAt = &now
		if err := s.walletRepo.UpdateBalances(ctx, wallet); err != nil {
			return err
		}

		t.Status = domain.TransactionCompleted
		t.Attestation = receipt
		t.ProcessedAt = &now
		result = t
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) && !errors.Is(err, ErrInvalidAmount) {
			zap.L().Error("ledger mutation failed", zap.Int("user_id", userID), zap.String("kind", string(kind)), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("ledger mutation applied",
		zap.Int("user_id", userID),
		zap.String("kind", string(kind)),
		zap.String("amount", amount.String()),
		zap.Bool("attestation_mock", result.Attestation.IsMock),
	)
	return result, nil
}

// Deposit credits the cash lane.
func (s *Service) Deposit(ctx context.Context, userID int, amount decimal.Decimal, description, reference string) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		description = "Cash deposit"
	}
	return s.ApplyMutation(ctx, userID, domain.KindDeposit, amount, domain.LaneCash, description, reference, nil)
}

// Withdraw debits the cash lane.
func (s *Service) Withdraw(ctx context.Context, userID int, amount decimal.Decimal, description, reference string) (*domain.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		description = "Cash withdrawal"
	}
	return s.ApplyMutation(ctx, userID, domain.KindWithdrawal, amount.Neg(), domain.LaneCash, description, reference, nil)
}

// GetWallet returns the user's wallet, creating it on first access.
func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err = s.lockOrCreateWallet(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int, kind domain.TransactionKind, status domain.TransactionStatus, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.transactionRepo.ListByUserID(ctx, userID, kind, status, limit, offset)
}

// Reconcile recomputes both lane balances from completed transactions and
// compares them with the stored wallet balances.
func (s *Service) Reconcile(ctx context.Context, userID int) (*Reconciliation, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return &Reconciliation{Consistent: true}, nil
	}

	cashSum, err := s.transactionRepo.SumCompletedByLane(ctx, wallet.ID, domain.LaneCash)
	if err != nil {
		return nil, err
	}
	rewardsSum, err := s.transactionRepo.SumCompletedByLane(ctx, wallet.ID, domain.LaneRewards)
	if err != nil {
		return nil, err
	}

	return &Reconciliation{
		CashBalance:    wallet.CashBalance,
		CashLedger:     cashSum,
		RewardsBalance: wallet.RewardsBalance,
		RewardsLedger:  rewardsSum,
		Consistent:     wallet.CashBalance.Equal(cashSum) && wallet.RewardsBalance.Equal(rewardsSum),
	}, nil
}

// VerifyAttestation asks the chain for the audit view of a receipt.
func (s *Service) VerifyAttestation(ctx context.Context, hash string) (*attestation.Verification, error) {
	return s.attestor.Verify(ctx, hash)
}

type Reconciliation struct {
	CashBalance    decimal.Decimal
	CashLedger     decimal.Decimal
	RewardsBalance decimal.Decimal
	RewardsLedger  decimal.Decimal
	Consistent     bool
}

func (s *Service) lockOrCreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	currency := user.Currency
	if currency == "" {
		currency = domain.CurrencyTND
	}
	return s.walletRepo.Create(ctx, userID, currency)
}
