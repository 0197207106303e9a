package scheduler

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/config"
	"github.com/codr1/Matchday/internal/db"
	"github.com/codr1/Matchday/internal/email"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/notify"
)

const (
	reconcileJobName = "standings_reconcile"
	dispatchJobName  = "notification_dispatch"
)

// RegisterJobs registers the standings reconciliation job and, when sender is
// set, the notification dispatch job.
func RegisterJobs(s *Service, database *db.DB, sender email.EmailSender, cfg config.JobsConfig) error {
	if database == nil {
		return fmt.Errorf("scheduler jobs require database")
	}

	if _, err := s.AddJob(reconcileJobName, cfg.ReconcileStandings, ReconcileTask(database)); err != nil {
		return fmt.Errorf("register %s: %w", reconcileJobName, err)
	}

	if sender == nil {
		log.Info().Msg("Notification dispatch disabled: email sender not configured")
		return nil
	}
	dispatcher := &notify.Dispatcher{
		Queries:     database.Queries,
		Sender:      sender,
		BatchSize:   cfg.NotificationBatchSize,
		MaxAttempts: cfg.NotificationMaxAttempts,
	}
	if _, err := s.AddJob(dispatchJobName, cfg.NotificationDispatch, DispatchTask(dispatcher)); err != nil {
		return fmt.Errorf("register %s: %w", dispatchJobName, err)
	}
	return nil
}

// ReconcileTask replays every active competition and repairs drifted
// standings.
func ReconcileTask(database *db.DB) Task {
	return func(ctx context.Context) {
		logger := log.Ctx(ctx)

		results, err := leagues.ReconcileAll(ctx, database, false)
		if err != nil {
			logger.Error().Err(err).Msg("Standings reconciliation failed")
			return
		}
		repaired := 0
		for _, rec := range results {
			if len(rec.Corrections) > 0 {
				repaired++
			}
		}
		logger.Info().
			Int("competitions", len(results)).
			Int("repaired", repaired).
			Msg("Standings reconciliation finished")
	}
}

// DispatchTask sends one batch of queued notifications.
func DispatchTask(d *notify.Dispatcher) Task {
	return func(ctx context.Context) {
		logger := log.Ctx(ctx)

		stats, err := d.Dispatch(ctx)
		if err != nil {
			logger.Error().Err(err).Int("sent", stats.Sent).Int("failed", stats.Failed).Msg("Notification dispatch failed")
			return
		}
		if stats.Sent > 0 || stats.Failed > 0 {
			logger.Info().Int("sent", stats.Sent).Int("failed", stats.Failed).Msg("Notifications dispatched")
		}
	}
}
