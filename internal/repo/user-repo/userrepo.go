package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/pg"
	"github.com/shopspring/decimal"
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

const userColumns = `id, login, password_hash, role, currency, verified, referral_code, invested_total, created_at`

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login = $1`
	return repo.scanUser(repo.db.QueryRow(ctx, query, login))
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return repo.scanUser(repo.db.QueryRow(ctx, query, id))
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE referral_code = $1`
	return repo.scanUser(repo.db.QueryRow(ctx, query, code))
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, role, currency, referral_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Role, user.Currency, user.ReferralCode).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// MarkVerified flips the verification flag; the returned bool reports whether
// this call performed the flip.
func (repo *Repository) MarkVerified(ctx context.Context, userID int) (bool, error) {
	query := `
		UPDATE users
		SET verified = TRUE
		WHERE id = $1 AND verified = FALSE
	`
	tag, err := repo.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't mark user verified", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddInvestedTotal increments the lifetime-invested aggregate.
func (repo *Repository) AddInvestedTotal(ctx context.Context, userID int, amount decimal.Decimal) error {
	query := `
		UPDATE users
		SET invested_total = invested_total + $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("can't update invested total", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user domain.User
		code *string
	)
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Role, &user.Currency, &user.Verified, &code, &user.InvestedTotal, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan user row", zap.Error(err))
		return nil, err
	}
	if code != nil {
		user.ReferralCode = *code
	}
	return &user, nil
}
