package newsfeed

import (
	"context"
	"sync"
	"testing"
	"time"
)

// A burst of inputs on one key lets exactly the final one through.
func TestDebouncerBurst(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	const burst = 5
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		settled []int
	)
	for i := 0; i < burst; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if d.Settle(context.Background(), "user-1") {
				mu.Lock()
				settled = append(settled, i)
				mu.Unlock()
			}
		}(i)
		time.Sleep(5 * time.Millisecond) // keystrokes within the quiet period
	}
	wg.Wait()

	if len(settled) != 1 {
		t.Fatalf("expected exactly one settled input, got %d (%v)", len(settled), settled)
	}
	if settled[0] != burst-1 {
		t.Fatalf("a superseded input settled: %d", settled[0])
	}
}

// Two quiet inputs far enough apart both go through.
func TestDebouncerSequentialInputs(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	if !d.Settle(context.Background(), "user-1") {
		t.Fatal("first quiet input should settle")
	}
	time.Sleep(20 * time.Millisecond)
	if !d.Settle(context.Background(), "user-1") {
		t.Fatal("second quiet input should settle")
	}
}

// Keys are independent: a burst on one key does not affect another.
func TestDebouncerKeysIndependent(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	done := make(chan bool, 1)
	go func() {
		done <- d.Settle(context.Background(), "user-a")
	}()
	time.Sleep(5 * time.Millisecond)
	if !d.Settle(context.Background(), "user-b") {
		t.Fatal("user-b input should settle despite user-a activity")
	}
	if !<-done {
		t.Fatal("user-a input should settle, nothing superseded it")
	}
}

func TestDebouncerContextCancel(t *testing.T) {
	d := NewDebouncer(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	if d.Settle(ctx, "user-1") {
		t.Fatal("cancelled input must not settle")
	}
}
