package referralrepo

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

const referralColumns = `id, referrer_id, referee_id, status, referee_reward, referrer_reward, currency,
        referee_investment_amount, qualified_at, rewarded_at, created_at`

func (r *Repository) Create(ctx context.Context, ref *domain.Referral) error {
	query := `
        INSERT INTO referrals (referrer_id, referee_id, status, referee_reward, referrer_reward, currency)
        VALUES ($1, $2, 'pending', $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		ref.ReferrerID, ref.RefereeID, ref.RefereeReward, ref.ReferrerReward, ref.Currency,
	).Scan(&ref.ID, &ref.CreatedAt)
	if err != nil {
		zap.L().Error("can't create referral", zap.Error(err))
		return err
	}
	ref.Status = domain.ReferralPending
	return nil
}

// FindByRefereeAndStatus looks up the referral where the given user is the
// referee, locking the row. The status filter is the idempotence gate: once
// the status has advanced, the same trigger finds nothing.
func (r *Repository) FindByRefereeAndStatus(ctx context.Context, refereeID int, status domain.ReferralStatus) (*domain.Referral, error) {
	query := `
        SELECT ` + referralColumns + `
        FROM referrals
        WHERE referee_id = $1 AND status = $2
        FOR UPDATE
    `
	return r.scanReferral(r.db.QueryRow(ctx, query, refereeID, status))
}

func (r *Repository) FindByReferrerID(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	query := `
        SELECT ` + referralColumns + `
        FROM referrals
        WHERE referrer_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("can't get referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		ref, err := scanReferralRow(rows)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, *ref)
	}
	return referrals, nil
}

// MarkQualified advances pending -> qualified. The status guard keeps the
// transition single-shot.
func (r *Repository) MarkQualified(ctx context.Context, id int, at time.Time) (bool, error) {
	query := `
        UPDATE referrals
        SET status = 'qualified', qualified_at = $1
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, at, id)
	if err != nil {
		zap.L().Error("can't mark referral qualified", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkRewarded advances qualified -> rewarded and records the qualifying
// investment amount.
func (r *Repository) MarkRewarded(ctx context.Context, id int, investedAmount decimal.Decimal, at time.Time) (bool, error) {
	query := `
        UPDATE referrals
        SET status = 'rewarded', referee_investment_amount = $1, rewarded_at = $2
        WHERE id = $3 AND status = 'qualified'
    `
	tag, err := r.db.Exec(ctx, query, investedAmount, at, id)
	if err != nil {
		zap.L().Error("can't mark referral rewarded", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FindRewardCandidates returns qualified referrals whose referees already
// invested at or above their threshold but whose referrer reward has not been
// paid. The cascade retry worker feeds on this.
func (r *Repository) FindRewardCandidates(ctx context.Context, limit int) ([]domain.RewardCandidate, error) {
	query := `
        SELECT r.id, r.referee_id, COALESCE(MAX(i.amount), 0)
        FROM referrals r
        JOIN investments i ON i.user_id = r.referee_id AND i.status = 'confirmed'
        WHERE r.status = 'qualified'
        GROUP BY r.id, r.referee_id
        ORDER BY r.id
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get reward candidates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.RewardCandidate
	for rows.Next() {
		var c domain.RewardCandidate
		if err := rows.Scan(&c.ReferralID, &c.RefereeID, &c.LargestInvestment); err != nil {
			zap.L().Error("can't scan reward candidate row", zap.Error(err))
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// FindApprovalCandidates returns referee IDs of pending referrals whose
// account is already verified but whose welcome bonus has not been paid,
// which happens when the approval-time trigger failed.
func (r *Repository) FindApprovalCandidates(ctx context.Context, limit int) ([]int, error) {
	query := `
        SELECT r.referee_id
        FROM referrals r
        JOIN users u ON u.id = r.referee_id AND u.verified = TRUE
        WHERE r.status = 'pending'
        ORDER BY r.id
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get approval candidates", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var refereeIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan approval candidate row", zap.Error(err))
			return nil, err
		}
		refereeIDs = append(refereeIDs, id)
	}
	return refereeIDs, nil
}

func (r *Repository) scanReferral(row pgx.Row) (*domain.Referral, error) {
	ref, err := scanReferralRow(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan referral row", zap.Error(err))
		return nil, err
	}
	return ref, nil
}

func scanReferralRow(row pgx.Row) (*domain.Referral, error) {
	var ref domain.Referral
	err := row.Scan(
		&ref.ID, &ref.ReferrerID, &ref.RefereeID, &ref.Status,
		&ref.RefereeReward, &ref.ReferrerReward, &ref.Currency,
		&ref.RefereeInvestmentTotal, &ref.QualifiedAt, &ref.RewardedAt, &ref.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
