package walletrepo

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

const walletColumns = `id, user_id, cash_balance, rewards_balance, currency, last_transaction_at`

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE user_id = $1
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, userID))
}

// GetByUserIDForUpdate locks the wallet row for the duration of the enclosing
// atomic unit. Concurrent mutations of the same wallet serialize here, which
// keeps the balance check and the debit under one lock.
func (r *Repository) GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) Create(ctx context.Context, userID int, currency domain.Currency) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, cash_balance, rewards_balance, currency)
        VALUES ($1, 0, 0, $2)
        RETURNING ` + walletColumns + `
    `
	wallet, err := r.scanWallet(r.db.QueryRow(ctx, query, userID, currency))
	if err != nil {
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// UpdateBalances writes both lanes and the last-transaction timestamp back to
// the locked row.
func (r *Repository) UpdateBalances(ctx context.Context, wallet *domain.Wallet) error {
	query := `
        UPDATE wallets
        SET cash_balance = $1, rewards_balance = $2, last_transaction_at = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, wallet.CashBalance, wallet.RewardsBalance, wallet.LastTransactionAt, wallet.ID)
	if err != nil {
		zap.L().Error("can't update wallet balances", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.CashBalance, &wallet.RewardsBalance, &wallet.Currency, &wallet.LastTransactionAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan wallet row", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}
