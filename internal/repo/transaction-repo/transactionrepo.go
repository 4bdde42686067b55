package transactionrepo

import (
	"context"
	"time"

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

// CreatePending inserts the ledger row in pending state and fills in the
// generated id and creation time.
func (r *Repository) CreatePending(ctx context.Context, t *domain.Transaction) error {
	query := `
        INSERT INTO transactions (user_id, wallet_id, kind, amount, currency, status, lane, description, reference, metadata)
        VALUES ($1, $2, $3, $4, $5, 'pending', $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		t.UserID, t.WalletID, t.Kind, t.Amount, t.Currency, t.Lane, t.Description, t.Reference, t.Metadata,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		zap.L().Error("can't create transaction", zap.Error(err))
		return err
	}
	t.Status = domain.TransactionPending
	return nil
}

// Complete finalizes a pending row and attaches the attestation receipt.
// Completed rows are never touched again.
func (r *Repository) Complete(ctx context.Context, id int, receipt domain.Attestation, processedAt time.Time) error {
	query := `
        UPDATE transactions
        SET status = 'completed',
            attestation_hash = $1, block_number = $2, gas_used = $3,
            chain_status = $4, contract_address = $5, is_mock = $6,
            processed_at = $7
        WHERE id = $8 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query,
		nullable(receipt.Hash), receipt.BlockNumber, receipt.GasUsed,
		receipt.ChainStatus, nullable(receipt.ContractAddress), receipt.IsMock,
		processedAt, id,
	)
	if err != nil {
		zap.L().Error("can't complete transaction", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const transactionColumns = `id, user_id, wallet_id, kind, amount, currency, status, lane, description, reference, metadata,
        attestation_hash, block_number, gas_used, chain_status, contract_address, is_mock, processed_at, created_at`

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE id = $1
    `
	t, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

// ListByUserID returns the newest transactions first, optionally filtered by
// kind and status.
func (r *Repository) ListByUserID(ctx context.Context, userID int, kind domain.TransactionKind, status domain.TransactionStatus, limit, offset int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1
          AND ($2 = '' OR kind = $2)
          AND ($3 = '' OR status = $3)
        ORDER BY created_at DESC
        LIMIT $4 OFFSET $5
    `
	rows, err := r.db.Query(ctx, query, userID, string(kind), string(status), limit, offset)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, nil
}

// SumCompletedByLane returns the reconciliation sum: signed amounts of all
// completed transactions for a wallet lane.
func (r *Repository) SumCompletedByLane(ctx context.Context, walletID int, lane domain.BalanceLane) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE wallet_id = $1 AND lane = $2 AND status = 'completed'
    `
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, walletID, lane).Scan(&sum); err != nil {
		zap.L().Error("can't sum transactions", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		t        domain.Transaction
		hash     *string
		blockNum *int64
		gasUsed  *string
		chainSt  *string
		contract *string
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.WalletID, &t.Kind, &t.Amount, &t.Currency, &t.Status, &t.Lane,
		&t.Description, &t.Reference, &t.Metadata,
		&hash, &blockNum, &gasUsed, &chainSt, &contract, &t.Attestation.IsMock,
		&t.ProcessedAt, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if hash != nil {
		t.Attestation.Hash = *hash
	}
	if blockNum != nil {
		t.Attestation.BlockNumber = *blockNum
	}
	if gasUsed != nil {
		t.Attestation.GasUsed = *gasUsed
	}
	if chainSt != nil {
		t.Attestation.ChainStatus = *chainSt
	}
	if contract != nil {
		t.Attestation.ContractAddress = *contract
	}
	return &t, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
