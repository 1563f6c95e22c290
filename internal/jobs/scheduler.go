// Package jobs runs the reconciliation checks on a cron schedule. The same
// service functions stay callable lazily from the HTTP handlers, so the
// scheduler is an optional supplement, not a requirement.
package jobs

import (
	"familypoints-backend/internal/services"
	"familypoints-backend/pkg/logger"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

func (s *Scheduler) Start() {
	// Daily-bonus backfill shortly after midnight. Idempotent, so racing
	// with a lazy page-load check is harmless.
	s.cron.AddFunc("5 0 * * *", func() {
		result, err := services.CheckDailyBonus(time.Now())
		if err != nil {
			logger.Log.Error("daily bonus reconciliation failed", zap.Error(err))
			return
		}
		if result.BonusAwarded {
			logger.Log.Info("daily bonus awarded",
				zap.Int("amount", result.Amount),
				zap.Int("days", result.Days))
		}
	})

	// Matured investments are never auto-released; surface them so the
	// family knows money is waiting.
	s.cron.AddFunc("0 * * * *", func() {
		matured, err := services.ListMaturedInvestments(time.Now())
		if err != nil {
			logger.Log.Error("maturity check failed", zap.Error(err))
			return
		}
		for _, inv := range matured {
			logger.Log.Info("investment matured, awaiting release",
				zap.Uint("id", inv.ID),
				zap.String("product", inv.ProductName),
				zap.Time("maturity", inv.MaturityDate))
		}
	})

	s.cron.Start()
	logger.Log.Info("reconciliation scheduler started")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Log.Info("reconciliation scheduler stopped")
}
