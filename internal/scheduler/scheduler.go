package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotInitialized = errors.New("scheduler not initialized")
	ErrEmptyJobName   = errors.New("job name is required")
	ErrEmptyCronExpr  = errors.New("cron expression is required")
	ErrNilTask        = errors.New("job task is required")
)

const defaultJobTimeout = 2 * time.Minute

// Task is a job body. The context carries the job logger and is cancelled
// when the job timeout elapses.
type Task func(ctx context.Context)

// Service wraps a gocron scheduler for the background jobs of the server.
type Service struct {
	scheduler  gocron.Scheduler
	jobTimeout time.Duration
	stopOnce   sync.Once
	stopErr    error
}

// New builds a stopped scheduler. A non-positive jobTimeout uses the default.
func New(jobTimeout time.Duration) (*Service, error) {
	if jobTimeout <= 0 {
		jobTimeout = defaultJobTimeout
	}
	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error().
						Str("job_id", jobID.String()).
						Str("job_name", jobName).
						Interface("panic", recoverData).
						Msg("Scheduler job panicked")
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	log.Info().Dur("job_timeout", jobTimeout).Msg("Scheduler initialized")
	return &Service{scheduler: sched, jobTimeout: jobTimeout}, nil
}

// Start begins running scheduled jobs.
func (s *Service) Start() error {
	if s == nil {
		return ErrNotInitialized
	}
	log.Info().Int("jobs", len(s.scheduler.Jobs())).Msg("Scheduler starting")
	s.scheduler.Start()
	return nil
}

// Stop shuts down the scheduler and waits for running jobs to return.
func (s *Service) Stop() error {
	if s == nil {
		return ErrNotInitialized
	}
	s.stopOnce.Do(func() {
		log.Info().Msg("Scheduler stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}

// AddJob registers a cron-based job. Overlapping runs of the same job are
// skipped rather than queued.
func (s *Service) AddJob(name, cronExpr string, task Task) (gocron.Job, error) {
	if s == nil {
		return nil, ErrNotInitialized
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}
	if task == nil {
		return nil, ErrNilTask
	}
	jobLogger := log.With().Str("job_name", name).Str("cron", cronExpr).Logger()
	jobLogger.Info().Msg("Registering scheduler job")

	timeout := s.jobTimeout
	wrappedTask := func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		started := time.Now()
		jobLogger.Debug().Msg("Scheduler job started")
		task(ctx)
		jobLogger.Debug().Dur("elapsed", time.Since(started)).Msg("Scheduler job completed")
	}

	job, err := s.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(wrappedTask),
		gocron.WithName(name),
	)
	if err != nil {
		jobLogger.Error().Err(err).Msg("Failed to register scheduler job")
		return nil, err
	}
	jobLogger.Info().Msg("Scheduler job registered")
	return job, nil
}
