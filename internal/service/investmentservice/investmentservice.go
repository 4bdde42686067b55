// Package investmentservice settles investments against project funding
// aggregates. The wallet path commits the debit, the investment record, the
// funding update and the lifetime aggregate as one atomic unit; the referral
// cascade runs after commit and can never undo a settlement.
package investmentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/pg"
	"github.com/korpor/fundledger/internal/service/ledgerservice"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=investmentservice.go -destination=mock.go -package=investmentservice

type ProjectRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Project, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	UpdateFunding(ctx context.Context, p *domain.Project) error
}

type InvestmentRepo interface {
	Create(ctx context.Context, inv *domain.Investment) error
	GetByID(ctx context.Context, id int) (*domain.Investment, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Investment, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Investment, error)
	Settle(ctx context.Context, id int, status domain.InvestmentStatus, transactionID *int, investedAt time.Time) (bool, error)
	MarkAwaitingPayment(ctx context.Context, id int, reference string) error
}

type UserAggregates interface {
	AddInvestedTotal(ctx context.Context, userID int, amount decimal.Decimal) error
}

type WalletReader interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
}

type Ledger interface {
	ApplyMutation(ctx context.Context, userID int, kind domain.TransactionKind, amount decimal.Decimal, lane domain.BalanceLane, description, reference string, metadata map[string]any) (*domain.Transaction, error)
}

// Cascade is the best-effort referral trigger invoked after a successful
// settlement commit.
type Cascade interface {
	QualifyingInvestment(ctx context.Context, refereeID int, investedAmount decimal.Decimal) (bool, error)
}

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrProjectNotFound    = errors.New("project not found")
	ErrProjectNotOpen     = errors.New("project is not open for investment")
	ErrBelowMinimum       = errors.New("amount is below the minimum investment")
	ErrExceedsCapacity    = errors.New("amount exceeds remaining funding capacity")
	ErrInvestmentNotFound = errors.New("investment not found")
)

// ErrInsufficientBalance aliases the ledger's sentinel so callers handle one
// error value for both the advisory and the authoritative balance check.
var ErrInsufficientBalance = ledgerservice.ErrInsufficientBalance

const (
	PaymentMethodWallet = "wallet"
)

type Service struct {
	projectRepo    ProjectRepo
	investmentRepo InvestmentRepo
	userAggregates UserAggregates
	walletReader   WalletReader
	ledger         Ledger
	cascade        Cascade
	txManager      pg.TXManager
}

func New(projectRepo ProjectRepo, investmentRepo InvestmentRepo, userAggregates UserAggregates, walletReader WalletReader, ledger Ledger, cascade Cascade, txManager pg.TXManager) *Service {
	return &Service{
		projectRepo:    projectRepo,
		investmentRepo: investmentRepo,
		userAggregates: userAggregates,
		walletReader:   walletReader,
		ledger:         ledger,
		cascade:        cascade,
		txManager:      txManager,
	}
}

// Validate runs the settlement preconditions without mutating anything. The
// wallet-path balance check here is advisory; the authoritative check happens
// under the wallet row lock during the debit.
func (s *Service) Validate(ctx context.Context, userID, projectID int, amount decimal.Decimal, paymentMethod string) (*domain.Project, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstProject(project, amount); err != nil {
		return nil, err
	}

	if paymentMethod == PaymentMethodWallet {
		wallet, err := s.walletReader.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if wallet == nil || wallet.CashBalance.LessThan(amount) {
			return nil, ErrInsufficientBalance
		}
	}
	return project, nil
}

// Invest settles a wallet-paid investment. One atomic unit, under the locked
// project row: ledger debit, confirmed investment record, funding aggregate
// update with the exactly-once sold-out flip, lifetime-invested increment.
func (s *Service) Invest(ctx context.Context, userID, projectID int, amount decimal.Decimal) (*domain.Investment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var investment *domain.Investment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		project, err := s.projectRepo.GetByIDForUpdate(ctx, projectID)
		if err != nil {
			return err
		}
		if err := validateAgainstProject(project, amount); err != nil {
			return err
		}

		t, err := s.ledger.ApplyMutation(ctx, userID, domain.KindInvestment, amount.Neg(), domain.LaneCash,
			fmt.Sprintf("Investment in %s", project.Name), "",
			map[string]any{"projectId": projectID},
		)
		if err != nil {
			return err
		}

		now := time.Now()
		investment = &domain.Investment{
			UserID:        userID,
			ProjectID:     projectID,
			Amount:        amount,
			Currency:      project.Currency,
			PaymentMethod: PaymentMethodWallet,
			Status:        domain.InvestmentConfirmed,
			TransactionID: &t.ID,
			InvestedAt:    &now,
		}
		if err := s.investmentRepo.Create(ctx, investment); err != nil {
			return err
		}

		if err := s.applyFunding(ctx, project, amount); err != nil {
			return err
		}
		return s.userAggregates.AddInvestedTotal(ctx, userID, amount)
	})
	if err != nil {
		return nil, err
	}

	s.runCascade(ctx, userID, amount)
	return investment, nil
}

// InvestWithExternalPayment opens the external-gateway path: the investment
// is recorded and parked in awaiting_external_payment until the gateway's
// webhook drives MarkSettled. No money moves here.
func (s *Service) InvestWithExternalPayment(ctx context.Context, userID, projectID int, amount decimal.Decimal, paymentMethod, externalRef string) (*domain.Investment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := validateAgainstProject(project, amount); err != nil {
		return nil, err
	}

	investment := &domain.Investment{
		UserID:        userID,
		ProjectID:     projectID,
		Amount:        amount,
		Currency:      project.Currency,
		PaymentMethod: paymentMethod,
		Status:        domain.InvestmentPending,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.investmentRepo.Create(ctx, investment); err != nil {
			return err
		}
		if externalRef == "" {
			externalRef = fmt.Sprintf("EXT-%d-%d", investment.ID, time.Now().Unix())
		}
		return s.investmentRepo.MarkAwaitingPayment(ctx, investment.ID, externalRef)
	})
	if err != nil {
		return nil, err
	}

	investment.Status = domain.InvestmentAwaitingPayment
	investment.ExternalRef = &externalRef
	return investment, nil
}

// MarkSettled is the idempotent entry point for external payment
// notifications. The first successful call performs the
// awaiting_external_payment -> confirmed transition plus the funding updates;
// replays and late duplicates return the already-settled investment
// unchanged.
func (s *Service) MarkSettled(ctx context.Context, investmentID int, success bool) (*domain.Investment, error) {
	var (
		investment *domain.Investment
		settled    bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		inv, err := s.investmentRepo.GetByIDForUpdate(ctx, investmentID)
		if err != nil {
			return err
		}
		if inv == nil {
			return ErrInvestmentNotFound
		}
		investment = inv

		if inv.Status == domain.InvestmentConfirmed || inv.Status == domain.InvestmentFailed {
			return nil
		}

		now := time.Now()
		if !success {
			_, err := s.investmentRepo.Settle(ctx, inv.ID, domain.InvestmentFailed, nil, now)
			if err == nil {
				inv.Status = domain.InvestmentFailed
			}
			return err
		}

		project, err := s.projectRepo.GetByIDForUpdate(ctx, inv.ProjectID)
		if err != nil {
			return err
		}
		if project == nil {
			return ErrProjectNotFound
		}

		ok, err := s.investmentRepo.Settle(ctx, inv.ID, domain.InvestmentConfirmed, nil, now)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := s.applyFunding(ctx, project, inv.Amount); err != nil {
			return err
		}
		if err := s.userAggregates.AddInvestedTotal(ctx, inv.UserID, inv.Amount); err != nil {
			return err
		}
		inv.Status = domain.InvestmentConfirmed
		inv.InvestedAt = &now
		settled = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if settled {
		s.runCascade(ctx, investment.UserID, investment.Amount)
	}
	return investment, nil
}

func (s *Service) GetProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *Service) GetProject(ctx context.Context, projectID int) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	return project, nil
}

func (s *Service) GetUserInvestments(ctx context.Context, userID int) ([]domain.Investment, error) {
	return s.investmentRepo.ListByUserID(ctx, userID)
}

// applyFunding moves the funding aggregate under the project lock and flips
// the status once the goal is reached.
func (s *Service) applyFunding(ctx context.Context, project *domain.Project, amount decimal.Decimal) error {
	project.CurrentAmount = project.CurrentAmount.Add(amount)
	if project.CurrentAmount.GreaterThanOrEqual(project.GoalAmount) {
		project.FundingStatus = domain.FundingSoldOut
	}
	return s.projectRepo.UpdateFunding(ctx, project)
}

// runCascade fires the referral trigger outside the settlement unit. A
// cascade failure is logged and left for the retry worker; it never unwinds
// the committed settlement.
func (s *Service) runCascade(ctx context.Context, userID int, amount decimal.Decimal) {
	if s.cascade == nil {
		return
	}
	if _, err := s.cascade.QualifyingInvestment(ctx, userID, amount); err != nil {
		zap.L().Error("referral cascade failed after settlement",
			zap.Int("user_id", userID), zap.String("amount", amount.String()), zap.Error(err))
	}
}

func validateAgainstProject(project *domain.Project, amount decimal.Decimal) error {
	if project == nil {
		return ErrProjectNotFound
	}
	if project.FundingStatus != domain.FundingOpen {
		return ErrProjectNotOpen
	}
	if amount.LessThan(project.MinimumInvestment) {
		return ErrBelowMinimum
	}
	if amount.GreaterThan(project.Remaining()) {
		return ErrExceedsCapacity
	}
	return nil
}
