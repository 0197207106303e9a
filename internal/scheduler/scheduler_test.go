package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codr1/Matchday/internal/config"
	"github.com/codr1/Matchday/internal/db"
	"github.com/codr1/Matchday/internal/email"
	"github.com/codr1/Matchday/internal/fixtures"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/notify"
	"github.com/codr1/Matchday/internal/testutil"
)

type countingSender struct {
	sent int
}

func (s *countingSender) Send(ctx context.Context, recipient, subject, body string) error {
	s.sent++
	return nil
}

func newService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(time.Second)
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	t.Cleanup(func() { _ = svc.Stop() })
	return svc
}

func createClassic(t *testing.T, database *db.DB) leagues.Schedule {
	t.Helper()
	teams := testutil.CreateTeams(t, database, "Club", 2, 7)
	schedule, err := leagues.CreateSchedule(context.Background(), database, leagues.ScheduleInput{
		Mode:          fixtures.ModeClassic,
		TeamIDs:       testutil.TeamIDs(teams),
		StartDate:     time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC),
		MatchesPerDay: 1,
		Policy:        fixtures.IntervalPolicy{Start: fixtures.Clock{Hour: 18}, IntervalMinutes: 120},
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	return schedule
}

func TestAddJobValidation(t *testing.T) {
	svc := newService(t)
	noop := func(context.Context) {}

	tests := []struct {
		name     string
		jobName  string
		cronExpr string
		task     Task
		want     error
	}{
		{name: "empty name", jobName: " ", cronExpr: "* * * * *", task: noop, want: ErrEmptyJobName},
		{name: "empty cron", jobName: "job", cronExpr: "", task: noop, want: ErrEmptyCronExpr},
		{name: "nil task", jobName: "job", cronExpr: "* * * * *", want: ErrNilTask},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.AddJob(tt.jobName, tt.cronExpr, tt.task); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := svc.AddJob("bad_cron", "every minute", noop); err == nil {
		t.Fatalf("expected an error for an unparseable cron expression")
	}

	var nilService *Service
	if _, err := nilService.AddJob("job", "* * * * *", noop); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestRegisterJobsSkipsDispatchWithoutSender(t *testing.T) {
	database := testutil.NewTestDB(t)
	cfg := config.JobsConfig{ReconcileStandings: "0 3 * * *", NotificationDispatch: "*/5 * * * *"}

	svc := newService(t)
	if err := RegisterJobs(svc, database, nil, cfg); err != nil {
		t.Fatalf("register jobs: %v", err)
	}
	if got := len(svc.scheduler.Jobs()); got != 1 {
		t.Fatalf("expected only the reconcile job, got %d jobs", got)
	}

	withSender := newService(t)
	if err := RegisterJobs(withSender, database, &countingSender{}, cfg); err != nil {
		t.Fatalf("register jobs: %v", err)
	}
	if got := len(withSender.scheduler.Jobs()); got != 2 {
		t.Fatalf("expected reconcile and dispatch jobs, got %d", got)
	}
}

func TestReconcileTaskRepairsDrift(t *testing.T) {
	database := testutil.NewTestDB(t)
	schedule := createClassic(t, database)
	match := schedule.Matches[0]
	if _, err := leagues.RecordResult(context.Background(), database, leagues.ResultInput{MatchID: match.ID, HomeScore: 2}); err != nil {
		t.Fatalf("record result: %v", err)
	}
	if _, err := database.Exec(`UPDATE standings SET won = 0, points = 0`); err != nil {
		t.Fatalf("corrupt standings: %v", err)
	}

	ReconcileTask(database)(context.Background())

	var points int
	if err := database.QueryRow(`SELECT points FROM standings WHERE team_id = ?`, match.HomeTeamID).Scan(&points); err != nil {
		t.Fatalf("load points: %v", err)
	}
	if points != 3 {
		t.Fatalf("expected repaired points 3, got %d", points)
	}
}

func TestDispatchTaskSendsQueuedNotices(t *testing.T) {
	database := testutil.NewTestDB(t)
	createClassic(t, database)

	var queued int
	if err := database.QueryRow(`SELECT COUNT(*) FROM notifications WHERE status = 'pending'`).Scan(&queued); err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if queued == 0 {
		t.Fatalf("expected fixture notices to be queued")
	}

	sender := &countingSender{}
	var _ email.EmailSender = sender
	DispatchTask(&notify.Dispatcher{Queries: database.Queries, Sender: sender, BatchSize: 100})(context.Background())

	if sender.sent != queued {
		t.Fatalf("expected %d sends, got %d", queued, sender.sent)
	}
}
