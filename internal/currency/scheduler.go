package currency

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultRefreshInterval = 10 * time.Minute

// Scheduler periodically refreshes the exchange-rate table. The browser
// original fetched once per page load; a long-lived process keeps the table
// warm instead.
type Scheduler struct {
	service         *Service
	refreshInterval time.Duration
	// -----
	sched gocron.Scheduler
}

func NewScheduler(service *Service, refreshInterval time.Duration) *Scheduler {
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}
	return &Scheduler{service: service, refreshInterval: refreshInterval}
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		logrus.Debugf("Refreshing exchange rates; execID: %s", execID)
		s.service.RefreshRates(jobCtx)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Rate refresh scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
