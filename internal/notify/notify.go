// Package notify implements the notification outbox. Rows are written in the
// same transaction as the change they announce and delivered later by Dispatch.
package notify

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/email"
)

const defaultSendTimeout = 10 * time.Second

// EnqueueTeam queues message for every active player of the team with an
// email address. It returns the number of rows written.
func EnqueueTeam(ctx context.Context, q *dbgen.Queries, teamID int64, message email.Message) (int, error) {
	players, err := q.ListContactablePlayersByTeam(ctx, teamID)
	if err != nil {
		return 0, fmt.Errorf("list contactable players for team %d: %w", teamID, err)
	}

	queued := 0
	for _, player := range players {
		recipient := strings.TrimSpace(player.Email.String)
		if recipient == "" {
			continue
		}
		if _, err := q.CreateNotification(ctx, dbgen.CreateNotificationParams{
			PlayerID:  player.ID,
			Recipient: recipient,
			Subject:   message.Subject,
			Body:      message.Body,
		}); err != nil {
			return queued, fmt.Errorf("queue notification for player %d: %w", player.ID, err)
		}
		queued++
	}
	return queued, nil
}

type Dispatcher struct {
	Queries     *dbgen.Queries
	Sender      email.EmailSender
	BatchSize   int
	MaxAttempts int
	SendTimeout time.Duration
	Now         func() time.Time
}

type DispatchStats struct {
	Sent   int
	Failed int
}

// Dispatch sends one batch of pending notifications. A failed send stays
// pending until it has been attempted MaxAttempts times.
func (d *Dispatcher) Dispatch(ctx context.Context) (DispatchStats, error) {
	var stats DispatchStats
	if d == nil || d.Queries == nil {
		return stats, fmt.Errorf("dispatcher requires queries")
	}
	if d.Sender == nil {
		return stats, fmt.Errorf("dispatcher requires an email sender")
	}
	logger := log.Ctx(ctx)

	batch := d.BatchSize
	if batch <= 0 {
		batch = 50
	}
	maxAttempts := d.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	timeout := d.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	now := d.Now
	if now == nil {
		now = time.Now
	}

	pending, err := d.Queries.ListPendingNotifications(ctx, int64(batch))
	if err != nil {
		return stats, fmt.Errorf("list pending notifications: %w", err)
	}

	for _, n := range pending {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		sendErr := email.SendWithTimeout(ctx, d.Sender, n.Recipient, email.Message{Subject: n.Subject, Body: n.Body}, timeout)
		if sendErr != nil {
			stats.Failed++
			logger.Warn().Err(sendErr).Int64("notification_id", n.ID).Int64("attempts", n.Attempts+1).Msg("Notification send failed")
			if err := d.Queries.MarkNotificationFailed(ctx, dbgen.MarkNotificationFailedParams{
				LastError:   sql.NullString{String: sendErr.Error(), Valid: true},
				MaxAttempts: int64(maxAttempts),
				ID:          n.ID,
			}); err != nil {
				return stats, fmt.Errorf("mark notification %d failed: %w", n.ID, err)
			}
			continue
		}

		if err := d.Queries.MarkNotificationSent(ctx, dbgen.MarkNotificationSentParams{
			SentAt: sql.NullTime{Time: now().UTC(), Valid: true},
			ID:     n.ID,
		}); err != nil {
			return stats, fmt.Errorf("mark notification %d sent: %w", n.ID, err)
		}
		stats.Sent++
	}

	return stats, nil
}
