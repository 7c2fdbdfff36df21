// Package scheduler runs the provider watchdog: a periodic job that pings
// each upstream provider and logs its status. Purely observational; the
// enrichment pipeline never consults it.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// Pinger is a provider that can answer a cheap reachability probe.
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// Watchdog periodically probes the configured providers.
type Watchdog struct {
	scheduler *gocron.Scheduler
	pingers   []Pinger
	interval  time.Duration
}

// New creates a Watchdog. An interval of 0 disables it.
func New(pingers []Pinger, interval time.Duration) *Watchdog {
	s := gocron.NewScheduler(time.UTC)
	return &Watchdog{
		scheduler: s,
		pingers:   pingers,
		interval:  interval,
	}
}

// Start schedules the periodic probe and starts the underlying scheduler.
func (w *Watchdog) Start() error {
	if w.interval <= 0 || len(w.pingers) == 0 {
		log.Println("watchdog: disabled")
		return nil
	}

	minutes := int(w.interval.Minutes())
	if minutes <= 0 {
		minutes = 1
	}

	_, err := w.scheduler.Every(minutes).Minutes().Do(func() {
		var wg sync.WaitGroup
		for _, p := range w.pingers {
			p := p
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := p.Ping(ctx); err != nil {
					log.Printf("watchdog: provider %s unhealthy: %v", p.Name(), err)
					return
				}
				log.Printf("watchdog: provider %s ok", p.Name())
			}()
		}
		wg.Wait()
	})
	if err != nil {
		return err
	}

	w.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future probes.
func (w *Watchdog) Stop() {
	if w.scheduler != nil {
		w.scheduler.Stop()
	}
}
