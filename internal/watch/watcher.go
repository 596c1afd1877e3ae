// Package watch polls the backend's new-entry marker to detect booking
// activity. Level-triggered polling, not push: on every tick the marker is
// checked, and a detected change triggers a full reload of the bookings
// collection rather than an incremental merge.
package watch

import (
	"context"
	"log"
	"time"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

// Source is the slice of the backend client the watcher needs.
type Source interface {
	CheckNewEntry(ctx context.Context) (*owner.NewEntry, error)
}

// Watcher polls for new entries on a fixed interval. Run returns when its
// context is cancelled, so a watcher can never outlive the view that
// started it.
type Watcher struct {
	source    Source
	interval  time.Duration
	onChange  func(ctx context.Context)
	lastCheck int64
}

// New creates a watcher that invokes onChange whenever the backend reports
// activity newer than the previous tick.
func New(source Source, interval time.Duration, onChange func(ctx context.Context)) *Watcher {
	return &Watcher{
		source:    source,
		interval:  interval,
		onChange:  onChange,
		lastCheck: time.Now().UnixMilli(),
	}
}

// Run blocks until ctx is cancelled. Poll failures are logged and retried
// on the next tick; the watcher never gives up on a transient error.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *Watcher) tick(ctx context.Context) {
	entry, err := w.source.CheckNewEntry(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("watch: new-entry check failed: %v", err)
		}
		return
	}
	if entry.New || entry.Timestamp > w.lastCheck {
		w.lastCheck = time.Now().UnixMilli()
		w.onChange(ctx)
	}
}
