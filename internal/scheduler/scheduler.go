// Package scheduler gates and triggers the daily report run.
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler checks the gate at the top of every hour and triggers the run
// when it is due.
type Scheduler struct {
	cron *cron.Cron
}

func New(loc *time.Location, gate *Gate, run func()) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc("0 * * * *", func() {
		if gate.ShouldRun() {
			log.Println("Scheduled run time reached. Running daily report...")
			run()
			log.Println("Scheduler active. Next check in 1 hour...")
		}
	})
	if err != nil {
		return nil, err
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the hourly checks; a run already in progress is not
// interrupted.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
