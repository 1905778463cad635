package newsfeed

import (
	"context"
	"sync"
	"time"
)

// DebounceDelay is the quiet period for live search input: a fetch is only
// issued once input has been quiet this long.
const DebounceDelay = 500 * time.Millisecond

// Debouncer collapses a burst of inputs per key into a single action.
// Each input waits out the quiet period and then checks whether it is still
// the latest input for its key; only the latest proceeds, so a burst of
// keystrokes issues exactly one fetch, with the final string. Superseded
// inputs are discarded by sequence number, so a slow early keystroke can
// never overwrite a later one.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	entries map[string]*debounceEntry
	once    sync.Once
}

type debounceEntry struct {
	seq  uint64
	last time.Time
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		entries: make(map[string]*debounceEntry),
	}
}

// Settle registers a new input for key, waits out the quiet period and
// reports whether this input is still the latest one. It returns false
// early when the context is cancelled.
func (d *Debouncer) Settle(ctx context.Context, key string) bool {
	d.once.Do(func() {
		go d.cleanupEntries()
	})

	d.mu.Lock()
	entry, exists := d.entries[key]
	if !exists {
		entry = &debounceEntry{}
		d.entries[key] = entry
	}
	entry.seq++
	entry.last = time.Now()
	mySeq := entry.seq
	d.mu.Unlock()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return false
	}

	d.mu.Lock()
	latest := entry.seq == mySeq
	d.mu.Unlock()
	return latest
}

// cleanupEntries periodically drops idle keys to avoid unbounded growth.
func (d *Debouncer) cleanupEntries() {
	idle := 10 * d.delay
	if idle < time.Minute {
		idle = time.Minute
	}
	for range time.Tick(idle) {
		d.mu.Lock()
		for key, entry := range d.entries {
			if time.Since(entry.last) > idle {
				delete(d.entries, key)
			}
		}
		d.mu.Unlock()
	}
}
