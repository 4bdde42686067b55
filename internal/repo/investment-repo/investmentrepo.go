package investmentrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const investmentColumns = `id, user_id, project_id, amount, currency, payment_method, status, transaction_id, external_reference, invested_at, created_at`

func (r *Repository) Create(ctx context.Context, inv *domain.Investment) error {
	query := `
        INSERT INTO investments (user_id, project_id, amount, currency, payment_method, status, transaction_id, invested_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		inv.UserID, inv.ProjectID, inv.Amount, inv.Currency, inv.PaymentMethod, inv.Status, inv.TransactionID, inv.InvestedAt,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		zap.L().Error("can't create investment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investments
        WHERE id = $1
    `
	return r.scanInvestment(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the investment row for the settle transition.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investments
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanInvestment(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Investment, error) {
	query := `
        SELECT ` + investmentColumns + `
        FROM investments
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get investments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var investments []domain.Investment
	for rows.Next() {
		var inv domain.Investment
		err := rows.Scan(&inv.ID, &inv.UserID, &inv.ProjectID, &inv.Amount, &inv.Currency, &inv.PaymentMethod, &inv.Status, &inv.TransactionID, &inv.ExternalRef, &inv.InvestedAt, &inv.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan investment row", zap.Error(err))
			return nil, err
		}
		investments = append(investments, inv)
	}
	return investments, nil
}

// Settle moves a not-yet-settled investment to its final status. The status
// guard in the WHERE clause makes replays no-ops; the returned flag reports
// whether this call performed the transition.
func (r *Repository) Settle(ctx context.Context, id int, status domain.InvestmentStatus, transactionID *int, investedAt time.Time) (bool, error) {
	query := `
        UPDATE investments
        SET status = $1, transaction_id = COALESCE($2, transaction_id), invested_at = $3
        WHERE id = $4 AND status IN ('pending', 'awaiting_external_payment')
    `
	tag, err := r.db.Exec(ctx, query, status, transactionID, investedAt, id)
	if err != nil {
		zap.L().Error("can't settle investment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkAwaitingPayment transitions a pending external-path investment once the
// gateway session is created.
func (r *Repository) MarkAwaitingPayment(ctx context.Context, id int, reference string) error {
	query := `
        UPDATE investments
        SET status = 'awaiting_external_payment', external_reference = $1
        WHERE id = $2 AND status = 'pending'
    `
	_, err := r.db.Exec(ctx, query, reference, id)
	if err != nil {
		zap.L().Error("can't mark investment awaiting payment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanInvestment(row pgx.Row) (*domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(&inv.ID, &inv.UserID, &inv.ProjectID, &inv.Amount, &inv.Currency, &inv.PaymentMethod, &inv.Status, &inv.TransactionID, &inv.ExternalRef, &inv.InvestedAt, &inv.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan investment row", zap.Error(err))
		return nil, err
	}
	return &inv, nil
}
