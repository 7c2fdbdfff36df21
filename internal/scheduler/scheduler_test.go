package scheduler

import (
	"context"
	"testing"
	"time"
)

type fakePinger struct {
	name string
}

func (f *fakePinger) Name() string                   { return f.name }
func (f *fakePinger) Ping(ctx context.Context) error { return nil }

func TestWatchdogDisabledWithZeroInterval(t *testing.T) {
	w := New([]Pinger{&fakePinger{name: "geonames"}}, 0)

	if err := w.Start(); err != nil {
		t.Fatalf("disabled watchdog must start cleanly: %v", err)
	}
	w.Stop()
}

func TestWatchdogDisabledWithoutPingers(t *testing.T) {
	w := New(nil, 5*time.Minute)

	if err := w.Start(); err != nil {
		t.Fatalf("pinger-less watchdog must start cleanly: %v", err)
	}
	w.Stop()
}

func TestWatchdogStartStop(t *testing.T) {
	w := New([]Pinger{&fakePinger{name: "geonames"}, &fakePinger{name: "pixabay"}}, 5*time.Minute)

	if err := w.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Stop()
}
