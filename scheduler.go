package main

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// searchTimes are the daily firing times, process-local timezone.
var searchTimes = []string{
	"0 8 * * *",
	"0 11 * * *",
	"0 14 * * *",
	"0 17 * * *",
	"0 20 * * *",
	"0 22 * * *",
	"0 3 * * *",
}

// Scheduler fires a full search cycle at fixed wall-clock times.
type Scheduler struct {
	cron   *cron.Cron
	search *FlightSearch
}

func NewScheduler(search *FlightSearch) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		search: search,
	}
}

// Start registers the daily jobs and starts the cron runner. Each firing
// runs one synchronous cycle to completion.
func (s *Scheduler) Start() error {
	for _, spec := range searchTimes {
		spec := spec
		_, err := s.cron.AddFunc(spec, func() {
			log.Printf("scheduled search (%s)", spec)
			if _, err := s.search.Run(); err != nil {
				log.Printf("scheduled search failed: %v", err)
			}
		})
		if err != nil {
			return fmt.Errorf("cron.AddFunc %q: %w", spec, err)
		}
	}

	s.cron.Start()
	log.Printf("scheduler started with %d daily runs", len(searchTimes))
	return nil
}

// Stop shuts down the scheduler; running jobs finish on their own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("scheduler stopped")
}
