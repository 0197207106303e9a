package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/codr1/Matchday/internal/db"
	"github.com/codr1/Matchday/internal/email"
	"github.com/codr1/Matchday/internal/testutil"
)

type recordingSender struct {
	sent    []string
	failFor string
}

func (s *recordingSender) Send(ctx context.Context, recipient, subject, body string) error {
	if s.failFor != "" && strings.HasPrefix(recipient, s.failFor) {
		return errors.New("mailbox unavailable")
	}
	s.sent = append(s.sent, recipient)
	return nil
}

func notificationStatus(t *testing.T, database *db.DB, recipient string) (string, int64) {
	t.Helper()
	var status string
	var attempts int64
	err := database.QueryRow(`SELECT status, attempts FROM notifications WHERE recipient = ?`, recipient).Scan(&status, &attempts)
	if err != nil {
		t.Fatalf("load notification for %s: %v", recipient, err)
	}
	return status, attempts
}

func TestEnqueueTeamSkipsPlayersWithoutEmail(t *testing.T) {
	database := testutil.NewTestDB(t)
	team := testutil.CreateTeamWithRoster(t, database, "Harbour FC", 3)
	if _, err := database.Exec(`INSERT INTO players (team_id, first_name, last_name, role) VALUES (?, 'No', 'Email', 'coach')`, team.ID); err != nil {
		t.Fatalf("insert player without email: %v", err)
	}
	if _, err := database.Exec(`UPDATE players SET active = 0 WHERE email = ?`, "harbour-fc-3@example.com"); err != nil {
		t.Fatalf("deactivate player: %v", err)
	}

	queued, err := EnqueueTeam(context.Background(), database.Queries, team.ID, email.Message{Subject: "Hello", Body: "World"})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if queued != 2 {
		t.Fatalf("expected 2 notifications, got %d", queued)
	}
}

func TestDispatchMarksSentAndRetriesFailures(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	team := testutil.CreateTeamWithRoster(t, database, "Harbour FC", 2)
	if _, err := EnqueueTeam(ctx, database.Queries, team.ID, email.Message{Subject: "Fixtures", Body: "Round 1"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	sender := &recordingSender{failFor: "harbour-fc-2@"}
	dispatcher := &Dispatcher{Queries: database.Queries, Sender: sender, MaxAttempts: 2}

	stats, err := dispatcher.Dispatch(ctx)
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if stats.Sent != 1 || stats.Failed != 1 {
		t.Fatalf("expected 1 sent and 1 failed, got %+v", stats)
	}
	if status, _ := notificationStatus(t, database, "harbour-fc-1@example.com"); status != "sent" {
		t.Fatalf("expected sent status, got %q", status)
	}
	if status, attempts := notificationStatus(t, database, "harbour-fc-2@example.com"); status != "pending" || attempts != 1 {
		t.Fatalf("expected pending after first failure, got %q with %d attempts", status, attempts)
	}

	stats, err = dispatcher.Dispatch(ctx)
	if err != nil {
		t.Fatalf("second dispatch: %v", err)
	}
	if stats.Sent != 0 || stats.Failed != 1 {
		t.Fatalf("expected only the failing row to be retried, got %+v", stats)
	}
	if status, attempts := notificationStatus(t, database, "harbour-fc-2@example.com"); status != "failed" || attempts != 2 {
		t.Fatalf("expected failed after max attempts, got %q with %d attempts", status, attempts)
	}

	stats, err = dispatcher.Dispatch(ctx)
	if err != nil {
		t.Fatalf("third dispatch: %v", err)
	}
	if stats.Sent != 0 || stats.Failed != 0 {
		t.Fatalf("expected nothing left to dispatch, got %+v", stats)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected exactly one delivered email, got %d", len(sender.sent))
	}
}
