package investmentrepo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/korpor/fundledger/internal/domain"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func investmentRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "user_id", "project_id", "amount", "currency", "payment_method", "status",
		"transaction_id", "external_reference", "invested_at", "created_at",
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	inv := &domain.Investment{
		UserID:        1,
		ProjectID:     7,
		Amount:        decimal.NewFromInt(3000),
		Currency:      domain.CurrencyTND,
		PaymentMethod: "wallet",
		Status:        domain.InvestmentConfirmed,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO investments`)).
		WithArgs(inv.UserID, inv.ProjectID, inv.Amount, inv.Currency, inv.PaymentMethod, inv.Status, inv.TransactionID, inv.InvestedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))

	assert.NoError(t, repo.Create(context.Background(), inv))
	assert.Equal(t, 5, inv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs(5).
		WillReturnRows(investmentRows().AddRow(
			5, 1, 7, decimal.NewFromInt(3000), domain.CurrencyTND, "wallet", domain.InvestmentPending,
			(*int)(nil), (*string)(nil), (*time.Time)(nil), time.Now(),
		))

	inv, err := repo.GetByIDForUpdate(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, domain.InvestmentPending, inv.Status)
	assert.Nil(t, inv.TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM investments`)).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	inv, err := repo.GetByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, inv)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
		WithArgs(1).
		WillReturnRows(investmentRows().
			AddRow(5, 1, 7, decimal.NewFromInt(3000), domain.CurrencyTND, "wallet", domain.InvestmentConfirmed, intPtr(42), (*string)(nil), &now, now).
			AddRow(6, 1, 8, decimal.NewFromInt(900), domain.CurrencyTND, "card", domain.InvestmentAwaitingPayment, (*int)(nil), strPtr("EXT-6-1"), (*time.Time)(nil), now))

	investments, err := repo.ListByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, investments, 2)
	assert.Equal(t, domain.InvestmentAwaitingPayment, investments[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Settle(t *testing.T) {
	repo, mock := NewMock(t)

	investedAt := time.Now()
	txID := 42

	t.Run("pending row transitions", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE investments`)).
			WithArgs(domain.InvestmentConfirmed, &txID, investedAt, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.Settle(context.Background(), 5, domain.InvestmentConfirmed, &txID, investedAt)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay on a settled row is a no-op", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE investments`)).
			WithArgs(domain.InvestmentConfirmed, &txID, investedAt, 5).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.Settle(context.Background(), 5, domain.InvestmentConfirmed, &txID, investedAt)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_MarkAwaitingPayment(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET status = 'awaiting_external_payment'`)).
		WithArgs("EXT-6-1756600000", 6).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.MarkAwaitingPayment(context.Background(), 6, "EXT-6-1756600000"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
