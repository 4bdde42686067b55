// Package referralservice pays the two-stage referral rewards. Both triggers
// are gated by the referral status value, so replaying a trigger after the
// status advanced is a guaranteed no-op and rewards are paid at most once.
package referralservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/korpor/fundledger/internal/domain"
	"github.com/korpor/fundledger/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=referralservice.go -destination=mock.go -package=referralservice

type ReferralRepo interface {
	Create(ctx context.Context, ref *domain.Referral) error
	FindByRefereeAndStatus(ctx context.Context, refereeID int, status domain.ReferralStatus) (*domain.Referral, error)
	FindByReferrerID(ctx context.Context, referrerID int) ([]domain.Referral, error)
	MarkQualified(ctx context.Context, id int, at time.Time) (bool, error)
	MarkRewarded(ctx context.Context, id int, investedAmount decimal.Decimal, at time.Time) (bool, error)
	FindRewardCandidates(ctx context.Context, limit int) ([]domain.RewardCandidate, error)
	FindApprovalCandidates(ctx context.Context, limit int) ([]int, error)
}

type Ledger interface {
	ApplyMutation(ctx context.Context, userID int, kind domain.TransactionKind, amount decimal.Decimal, lane domain.BalanceLane, description, reference string, metadata map[string]any) (*domain.Transaction, error)
}

var ErrStateConflict = errors.New("referral not in expected state")

// Reward and qualifying-threshold schedule per currency.
var (
	rewardByCurrency = map[domain.Currency]decimal.Decimal{
		domain.CurrencyTND: decimal.NewFromInt(25),
		domain.CurrencyEUR: decimal.NewFromInt(10),
	}
	thresholdByCurrency = map[domain.Currency]decimal.Decimal{
		domain.CurrencyTND: decimal.NewFromInt(2000),
		domain.CurrencyEUR: decimal.NewFromInt(800),
	}
)

// MinimumQualifyingInvestment returns the investment size a referee must
// reach before the referrer reward is due.
func MinimumQualifyingInvestment(currency domain.Currency) decimal.Decimal {
	if threshold, ok := thresholdByCurrency[currency]; ok {
		return threshold
	}
	return thresholdByCurrency[domain.CurrencyTND]
}

func rewardAmount(currency domain.Currency) decimal.Decimal {
	if reward, ok := rewardByCurrency[currency]; ok {
		return reward
	}
	return rewardByCurrency[domain.CurrencyTND]
}

type Service struct {
	referralRepo ReferralRepo
	ledger       Ledger
	txManager    pg.TXManager
}

func New(referralRepo ReferralRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		referralRepo: referralRepo,
		ledger:       ledger,
		txManager:    txManager,
	}
}

// Create records a pending referral between two users, fixing the reward
// amounts at today's schedule.
func (s *Service) Create(ctx context.Context, referrerID, refereeID int, currency domain.Currency) (*domain.Referral, error) {
	ref := &domain.Referral{
		ReferrerID:     referrerID,
		RefereeID:      refereeID,
		RefereeReward:  rewardAmount(currency),
		ReferrerReward: rewardAmount(currency),
		Currency:       currency,
	}
	if err := s.referralRepo.Create(ctx, ref); err != nil {
		return nil, err
	}
	zap.L().Info("referral created", zap.Int("referrer_id", referrerID), zap.Int("referee_id", refereeID))
	return ref, nil
}

// OnApproval pays the referee's welcome bonus when the account is approved.
// The reward credit and the pending -> qualified transition share one atomic
// unit; if the referral is not pending, nothing happens. Returns whether a
// reward was paid by this call.
func (s *Service) OnApproval(ctx context.Context, userID int) (bool, error) {
	paid := false
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ref, err := s.referralRepo.FindByRefereeAndStatus(ctx, userID, domain.ReferralPending)
		if err != nil {
			return err
		}
		if ref == nil {
			return nil
		}

		_, err = s.ledger.ApplyMutation(ctx, userID, domain.KindReferralBonus, ref.RefereeReward, domain.LaneRewards,
			fmt.Sprintf("Welcome bonus - referred by user #%d", ref.ReferrerID),
			fmt.Sprintf("REF_%d", ref.ID),
			map[string]any{"referralId": ref.ID},
		)
		if err != nil {
			return err
		}

		ok, err := s.referralRepo.MarkQualified(ctx, ref.ID, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrStateConflict
		}
		paid = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if paid {
		zap.L().Info("referee signup reward paid", zap.Int("referee_id", userID))
	}
	return paid, nil
}

// QualifyingInvestment pays the referrer once the referee invests at or above
// the currency threshold. The amount record, the reward credit and the
// qualified -> rewarded transition share one atomic unit. Below-threshold
// amounts leave the referral untouched. Returns whether a reward was paid by
// this call.
func (s *Service) QualifyingInvestment(ctx context.Context, refereeID int, investedAmount decimal.Decimal) (bool, error) {
	paid := false
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ref, err := s.referralRepo.FindByRefereeAndStatus(ctx, refereeID, domain.ReferralQualified)
		if err != nil {
			return err
		}
		if ref == nil {
			return nil
		}

		if investedAmount.LessThan(MinimumQualifyingInvestment(ref.Currency)) {
			zap.L().Debug("investment below referral threshold",
				zap.Int("referee_id", refereeID), zap.String("amount", investedAmount.String()))
			return nil
		}

		_, err = s.ledger.ApplyMutation(ctx, ref.ReferrerID, domain.KindReferralBonus, ref.ReferrerReward, domain.LaneRewards,
			fmt.Sprintf("Referral bonus - user #%d invested %s %s", refereeID, investedAmount.String(), ref.Currency),
			fmt.Sprintf("REF_%d", ref.ID),
			map[string]any{"referralId": ref.ID},
		)
		if err != nil {
			return err
		}

		ok, err := s.referralRepo.MarkRewarded(ctx, ref.ID, investedAmount, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrStateConflict
		}
		paid = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if paid {
		zap.L().Info("referrer investment reward paid", zap.Int("referee_id", refereeID))
	}
	return paid, nil
}

// GetReferrals lists the referrals a user has made.
func (s *Service) GetReferrals(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	return s.referralRepo.FindByReferrerID(ctx, referrerID)
}

// RewardCandidates exposes qualified referrals eligible for a referrer-reward
// retry; the cascade worker drains this.
func (s *Service) RewardCandidates(ctx context.Context, limit int) ([]domain.RewardCandidate, error) {
	return s.referralRepo.FindRewardCandidates(ctx, limit)
}

// ApprovalCandidates exposes verified referees whose welcome bonus is still
// pending, so the worker can replay the approval trigger.
func (s *Service) ApprovalCandidates(ctx context.Context, limit int) ([]int, error) {
	return s.referralRepo.FindApprovalCandidates(ctx, limit)
}
