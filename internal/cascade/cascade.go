// Package cascade is the retry loop behind the referral reward cascade. The
// approval and investment triggers run inline with their operations; when a
// trigger fails after the operation committed, the referral is left behind in
// pending or qualified state. This worker periodically re-drives those
// referrals until the status advances.
package cascade

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/korpor/fundledger/internal/config"
	"github.com/korpor/fundledger/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Referrals is the cascade surface the worker replays. Both triggers are
// status-gated, so re-driving an already-rewarded referral is a no-op.
type Referrals interface {
	OnApproval(ctx context.Context, userID int) (bool, error)
	QualifyingInvestment(ctx context.Context, refereeID int, investedAmount decimal.Decimal) (bool, error)
	RewardCandidates(ctx context.Context, limit int) ([]domain.RewardCandidate, error)
	ApprovalCandidates(ctx context.Context, limit int) ([]int, error)
}

var processingReferrals sync.Map

type Service struct {
	referrals      Referrals
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, referrals Referrals) *Service {
	return &Service{
		referrals:      referrals,
		limit:          100,
		workerPool:     NewWorkerPool(4),
		updateInterval: cfg.CascadeInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Cascade retry worker started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping cascade worker")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.processCandidates(ctx)
		}
	}
}

func (s *Service) processCandidates(ctx context.Context) {
	limit := int(atomic.LoadUint32(&s.limit))

	approvals, err := s.referrals.ApprovalCandidates(ctx, limit)
	if err != nil {
		zap.L().Error("Failed to fetch approval candidates", zap.Error(err))
		return
	}
	rewards, err := s.referrals.RewardCandidates(ctx, limit)
	if err != nil {
		zap.L().Error("Failed to fetch reward candidates", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, refereeID := range approvals {
		refereeID := refereeID
		s.enqueue(ctx, &g, refereeID, func() error {
			return s.handleApproval(ctx, refereeID)
		})
	}
	for _, candidate := range rewards {
		candidate := candidate
		s.enqueue(ctx, &g, candidate.RefereeID, func() error {
			return s.handleReward(ctx, candidate)
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing referral candidates", zap.Error(err))
	}
}

// enqueue hands the task to the pool with an in-flight guard keyed by referee,
// so overlapping ticks never double-drive the same referral.
func (s *Service) enqueue(ctx context.Context, g *errgroup.Group, refereeID int, task Task) {
	if _, loaded := processingReferrals.LoadOrStore(refereeID, struct{}{}); loaded {
		return
	}
	g.Go(func() error {
		err := s.workerPool.AddTask(ctx, func() error {
			defer processingReferrals.Delete(refereeID)
			return task()
		})
		if err != nil {
			processingReferrals.Delete(refereeID)
			return err
		}
		return nil
	})
}

func (s *Service) handleApproval(ctx context.Context, refereeID int) error {
	paid, err := s.referrals.OnApproval(ctx, refereeID)
	if err != nil {
		return err
	}
	if paid {
		zap.L().Info("Replayed approval trigger", zap.Int("referee_id", refereeID))
	}
	return nil
}

func (s *Service) handleReward(ctx context.Context, candidate domain.RewardCandidate) error {
	paid, err := s.referrals.QualifyingInvestment(ctx, candidate.RefereeID, candidate.LargestInvestment)
	if err != nil {
		return err
	}
	if paid {
		zap.L().Info("Replayed investment trigger",
			zap.Int("referral_id", candidate.ReferralID), zap.Int("referee_id", candidate.RefereeID))
	}
	return nil
}
