package projectrepo

import (
	"context"

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

const projectColumns = `id, name, goal_amount, current_amount, minimum_investment, currency, funding_status, created_at`

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Project, error) {
	query := `
        SELECT ` + projectColumns + `
        FROM projects
        WHERE id = $1
    `
	return r.scanProject(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the project row so that concurrent investments
// against the same project serialize. Both the remaining-capacity check and
// the funding update run under this lock.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Project, error) {
	query := `
        SELECT ` + projectColumns + `
        FROM projects
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanProject(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) List(ctx context.Context) ([]domain.Project, error) {
	query := `
        SELECT ` + projectColumns + `
        FROM projects
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get projects", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		err := rows.Scan(&p.ID, &p.Name, &p.GoalAmount, &p.CurrentAmount, &p.MinimumInvestment, &p.Currency, &p.FundingStatus, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan project row", zap.Error(err))
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// UpdateFunding writes the funding aggregate back. The sold-out transition is
// guarded in SQL so it can only ever fire on a project that is still open.
func (r *Repository) UpdateFunding(ctx context.Context, p *domain.Project) error {
	query := `
        UPDATE projects
        SET current_amount = $1,
            funding_status = CASE WHEN $2 = 'sold_out' AND funding_status = 'open' THEN 'sold_out' ELSE funding_status END
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, p.CurrentAmount, string(p.FundingStatus), p.ID)
	if err != nil {
		zap.L().Error("can't update project funding", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.GoalAmount, &p.CurrentAmount, &p.MinimumInvestment, &p.Currency, &p.FundingStatus, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan project row", zap.Error(err))
		return nil, err
	}
	return &p, nil
}
