package investmentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/pg"
	"github.com/korpor/fundledger/internal/service/ledgerservice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	projectRepo    *MockProjectRepo
	investmentRepo *MockInvestmentRepo
	userAggregates *MockUserAggregates
	walletReader   *MockWalletReader
	ledger         *MockLedger
	cascade        *MockCascade
	txManager      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		projectRepo:    NewMockProjectRepo(ctrl),
		investmentRepo: NewMockInvestmentRepo(ctrl),
		userAggregates: NewMockUserAggregates(ctrl),
		walletReader:   NewMockWalletReader(ctrl),
		ledger:         NewMockLedger(ctrl),
		cascade:        NewMockCascade(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
	}
	service := New(m.projectRepo, m.investmentRepo, m.userAggregates, m.walletReader, m.ledger, m.cascade, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func passthroughBegin(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func openProject() *domain.Project {
	return &domain.Project{
		ID:                7,
		Name:              "Marina Bay Residence",
		GoalAmount:        decimal.NewFromInt(10000),
		CurrentAmount:     decimal.NewFromInt(4000),
		MinimumInvestment: decimal.NewFromInt(500),
		Currency:          domain.CurrencyTND,
		FundingStatus:     domain.FundingOpen,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		amount        decimal.Decimal
		paymentMethod string
		prepareMock   func(m *mocks)
		wantErr       error
	}{
		{
			name:          "wallet payment within all limits",
			amount:        decimal.NewFromInt(3000),
			paymentMethod: PaymentMethodWallet,
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 7).Return(openProject(), nil)
				m.walletReader.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{CashBalance: decimal.NewFromInt(5000)}, nil)
			},
		},
		{
			name:          "unknown project",
			amount:        decimal.NewFromInt(3000),
			paymentMethod: PaymentMethodWallet,
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 7).Return(nil, nil)
			},
			wantErr: ErrProjectNotFound,
		},
		{
			name:          "sold-out project rejects new investments",
			amount:        decimal.NewFromInt(3000),
			paymentMethod: PaymentMethodWallet,
			prepareMock: func(m *mocks) {
				p := openProject()
				p.FundingStatus = domain.FundingSoldOut
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 7).Return(p, nil)
			},
			wantErr: ErrProjectNotOpen,
		},
		{
			name:          "amount below project minimum",
			amount:        decimal.NewFromInt(400),
			paymentMethod: PaymentMethodWallet,
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 7).Return(openProject(), nil)
			},
			wantErr: ErrBelowMinimum,
		},
		{
			name:          "amount above remaining capacity",
			amount:        decimal.NewFromInt(6001),
			paymentMethod: PaymentMethodWallet,
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 7).Return(openProject(), nil)
			},
			wantErr: ErrExceedsCapacity,
		},
		{
			name:          "wallet cannot cover the amount",
			amount:        decimal.NewFromInt(3000),
			paymentMethod: PaymentMethodWallet,
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 7).Return(openProject(), nil)
				m.walletReader.EXPECT().GetByUserID(gomock.Any(), 1).Return(&domain.Wallet{CashBalance: decimal.NewFromInt(100)}, nil)
			},
			wantErr: ErrInsufficientBalance,
		},
		{
			name:          "external payment skips the wallet check",
			amount:        decimal.NewFromInt(3000),
			paymentMethod: "card",
			prepareMock: func(m *mocks) {
				m.projectRepo.EXPECT().GetByID(gomock.Any(), 7).Return(openProject(), nil)
			},
		},
		{
			name:          "non-positive amount",
			amount:        decimal.Zero,
			paymentMethod: PaymentMethodWallet,
			wantErr:       ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			_, err := service.Validate(context.Background(), 1, 7, tt.amount, tt.paymentMethod)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvest_WalletPath(t *testing.T) {
	service, m := NewMock(t)
	passthroughBegin(m.txManager)

	amount := decimal.NewFromInt(3000)
	project := openProject()
	m.projectRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 7).Return(project, nil)
	m.ledger.EXPECT().
		ApplyMutation(gomock.Any(), 1, domain.KindInvestment, gomock.Any(), domain.LaneCash, gomock.Any(), "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ domain.TransactionKind, debit decimal.Decimal, _ domain.BalanceLane, _, _ string, metadata map[string]any) (*domain.Transaction, error) {
			assert.True(t, debit.Equal(amount.Neg()))
			assert.Equal(t, 7, metadata["projectId"])
			return &domain.Transaction{ID: 101}, nil
		})
	m.investmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv *domain.Investment) error {
			inv.ID = 42
			return nil
		})
	m.projectRepo.EXPECT().UpdateFunding(gomock.Any(), project).Return(nil)
	m.userAggregates.EXPECT().AddInvestedTotal(gomock.Any(), 1, amount).Return(nil)
	m.cascade.EXPECT().QualifyingInvestment(gomock.Any(), 1, amount).Return(true, nil)

	investment, err := service.Invest(context.Background(), 1, 7, amount)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvestmentConfirmed, investment.Status)
	assert.Equal(t, 101, *investment.TransactionID)
	assert.NotNil(t, investment.InvestedAt)
	assert.True(t, project.CurrentAmount.Equal(decimal.NewFromInt(7000)))
	assert.Equal(t, domain.FundingOpen, project.FundingStatus)
}

func TestInvest_InsufficientBalanceRejectsUnit(t *testing.T) {
	service, m := NewMock(t)
	passthroughBegin(m.txManager)

	m.projectRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 7).Return(openProject(), nil)
	m.ledger.EXPECT().
		ApplyMutation(gomock.Any(), 1, domain.KindInvestment, gomock.Any(), domain.LaneCash, gomock.Any(), "", gomock.Any()).
		Return(nil, ledgerservice.ErrInsufficientBalance)

	investment, err := service.Invest(context.Background(), 1, 7, decimal.NewFromInt(3000))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Nil(t, investment)
}

func TestInvest_SoldOutFlip(t *testing.T) {
	service, m := NewMock(t)
	passthroughBegin(m.txManager)

	amount := decimal.NewFromInt(6000)
	project := openProject()
	m.projectRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 7).Return(project, nil)
	m.ledger.EXPECT().
		ApplyMutation(gomock.Any(), 1, domain.KindInvestment, gomock.Any(), domain.LaneCash, gomock.Any(), "", gomock.Any()).
		Return(&domain.Transaction{ID: 102}, nil)
	m.investmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.projectRepo.EXPECT().UpdateFunding(gomock.Any(), project).Return(nil)
	m.userAggregates.EXPECT().AddInvestedTotal(gomock.Any(), 1, amount).Return(nil)
	m.cascade.EXPECT().QualifyingInvestment(gomock.Any(), 1, amount).Return(false, nil)

	_, err := service.Invest(context.Background(), 1, 7, amount)
	assert.NoError(t, err)
	assert.Equal(t, domain.FundingSoldOut, project.FundingStatus)
	assert.True(t, project.CurrentAmount.Equal(project.GoalAmount))
}

func TestInvest_CascadeFailureDoesNotUndoSettlement(t *testing.T) {
	service, m := NewMock(t)
	passthroughBegin(m.txManager)

	amount := decimal.NewFromInt(3000)
	project := openProject()
	m.projectRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 7).Return(project, nil)
	m.ledger.EXPECT().
		ApplyMutation(gomock.Any(), 1, domain.KindInvestment, gomock.Any(), domain.LaneCash, gomock.Any(), "", gomock.Any()).
		Return(&domain.Transaction{ID: 103}, nil)
	m.investmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.projectRepo.EXPECT().UpdateFunding(gomock.Any(), project).Return(nil)
	m.userAggregates.EXPECT().AddInvestedTotal(gomock.Any(), 1, amount).Return(nil)
	m.cascade.EXPECT().QualifyingInvestment(gomock.Any(), 1, amount).Return(false, errors.New("cascade down"))

	investment, err := service.Invest(context.Background(), 1, 7, amount)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvestmentConfirmed, investment.Status)
}

func TestInvestWithExternalPayment(t *testing.T) {
	service, m := NewMock(t)
	passthroughBegin(m.txManager)

	m.projectRepo.EXPECT().GetByID(gomock.Any(), 7).Return(openProject(), nil)
	m.investmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv *domain.Investment) error {
			inv.ID = 43
			return nil
		})
	m.investmentRepo.EXPECT().MarkAwaitingPayment(gomock.Any(), 43, "PAY-SESSION-9").Return(nil)

	investment, err := service.InvestWithExternalPayment(context.Background(), 1, 7, decimal.NewFromInt(3000), "card", "PAY-SESSION-9")
	assert.NoError(t, err)
	assert.Equal(t, domain.InvestmentAwaitingPayment, investment.Status)
	assert.Equal(t, "PAY-SESSION-9", *investment.ExternalRef)
	assert.Nil(t, investment.TransactionID)
}

func TestMarkSettled(t *testing.T) {
	awaiting := func() *domain.Investment {
		return &domain.Investment{
			ID:            43,
			UserID:        1,
			ProjectID:     7,
			Amount:        decimal.NewFromInt(3000),
			Currency:      domain.CurrencyTND,
			PaymentMethod: "card",
			Status:        domain.InvestmentAwaitingPayment,
		}
	}

	t.Run("first success notification settles the investment", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughBegin(m.txManager)

		project := openProject()
		m.investmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 43).Return(awaiting(), nil)
		m.projectRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 7).Return(project, nil)
		m.investmentRepo.EXPECT().Settle(gomock.Any(), 43, domain.InvestmentConfirmed, gomock.Nil(), gomock.Any()).Return(true, nil)
		m.projectRepo.EXPECT().UpdateFunding(gomock.Any(), project).Return(nil)
		m.userAggregates.EXPECT().AddInvestedTotal(gomock.Any(), 1, decimal.NewFromInt(3000)).Return(nil)
		m.cascade.EXPECT().QualifyingInvestment(gomock.Any(), 1, decimal.NewFromInt(3000)).Return(true, nil)

		investment, err := service.MarkSettled(context.Background(), 43, true)
		assert.NoError(t, err)
		assert.Equal(t, domain.InvestmentConfirmed, investment.Status)
		assert.True(t, project.CurrentAmount.Equal(decimal.NewFromInt(7000)))
	})

	t.Run("replayed notification is a no-op", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughBegin(m.txManager)

		confirmed := awaiting()
		confirmed.Status = domain.InvestmentConfirmed
		now := time.Now()
		confirmed.InvestedAt = &now
		m.investmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 43).Return(confirmed, nil)

		investment, err := service.MarkSettled(context.Background(), 43, true)
		assert.NoError(t, err)
		assert.Equal(t, domain.InvestmentConfirmed, investment.Status)
	})

	t.Run("failure notification fails the investment without funding changes", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughBegin(m.txManager)

		m.investmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 43).Return(awaiting(), nil)
		m.investmentRepo.EXPECT().Settle(gomock.Any(), 43, domain.InvestmentFailed, gomock.Nil(), gomock.Any()).Return(true, nil)

		investment, err := service.MarkSettled(context.Background(), 43, false)
		assert.NoError(t, err)
		assert.Equal(t, domain.InvestmentFailed, investment.Status)
	})

	t.Run("unknown investment", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughBegin(m.txManager)

		m.investmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 99).Return(nil, nil)

		investment, err := service.MarkSettled(context.Background(), 99, true)
		assert.ErrorIs(t, err, ErrInvestmentNotFound)
		assert.Nil(t, investment)
	})
}
