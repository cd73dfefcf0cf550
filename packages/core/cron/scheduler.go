package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// jobTimeout bounds one scheduled run; HTTP-triggered runs are bounded by
// the caller instead.
const jobTimeout = 15 * time.Minute

// Job is a named sync run on a cron spec with seconds. An empty Spec
// leaves the job unscheduled but still runnable with RunNow.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
	jobs []Job
}

func NewScheduler(jobs ...Job) *Scheduler {
	logger := slogLogger{}
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	return &Scheduler{
		cron: c,
		jobs: jobs,
	}
}

// Start schedules every job with a spec and starts the cron loop.
func (s *Scheduler) Start() error {
	scheduled := 0
	for _, job := range s.jobs {
		if job.Spec == "" {
			continue
		}
		job := job
		if _, err := s.cron.AddFunc(job.Spec, func() { s.run(job) }); err != nil {
			return fmt.Errorf("schedule %s: %w", job.Name, err)
		}
		slog.Info("job scheduled", "job", job.Name, "spec", job.Spec)
		scheduled++
	}

	if scheduled == 0 {
		slog.Info("no sync jobs scheduled")
		return nil
	}

	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("cron scheduler stopped")
}

// RunNow runs the named job synchronously.
func (s *Scheduler) RunNow(name string) error {
	for _, job := range s.jobs {
		if job.Name == name {
			return s.run(job)
		}
	}
	return fmt.Errorf("unknown job %q", name)
}

func (s *Scheduler) run(job Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	start := time.Now()
	slog.Info("scheduled job started", "job", job.Name)
	if err := job.Run(ctx); err != nil {
		slog.Error("scheduled job failed", "job", job.Name, "err", err, "elapsed", time.Since(start))
		return err
	}
	slog.Info("scheduled job finished", "job", job.Name, "elapsed", time.Since(start))
	return nil
}

// slogLogger adapts cron's logger to slog.
type slogLogger struct{}

func (slogLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append(keysAndValues, "err", err)...)
}
