package dedup_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"draftforge/internal/core/dedup"
	"draftforge/internal/platform/clock"
)

func TestSeenOncePerRetentionWindow(t *testing.T) {
	t.Parallel()

	tick := clock.NewFake(time.Date(2025, 5, 26, 9, 0, 0, 0, time.UTC))
	set := dedup.New(tick)

	if set.Seen("m-1") {
		t.Fatalf("first sighting must not be a duplicate")
	}
	if !set.Seen("m-1") {
		t.Fatalf("second sighting inside the window must be a duplicate")
	}

	// just before expiry it is still remembered
	tick.Advance(dedup.Retention - time.Second)
	if !set.Seen("m-1") {
		t.Fatalf("sighting just before expiry must be a duplicate")
	}

	// repeat sightings must not have extended the window
	tick.Advance(2 * time.Second)
	if set.Seen("m-1") {
		t.Fatalf("sighting after the window must not be a duplicate")
	}
}

func TestSeenDistinctIdsIndependent(t *testing.T) {
	t.Parallel()

	set := dedup.New(clock.NewFake(time.Unix(1748242800, 0)))
	if set.Seen("a") {
		t.Fatalf("id a seen too early")
	}
	if set.Seen("b") {
		t.Fatalf("id b must not be affected by id a")
	}
	if !set.Seen("a") || !set.Seen("b") {
		t.Fatalf("both ids must now be duplicates")
	}
}

func TestSeenSweepDropsExpired(t *testing.T) {
	t.Parallel()

	tick := clock.NewFake(time.Unix(1748242800, 0))
	set := dedup.New(tick)
	for i := 0; i < 10; i++ {
		set.Seen(fmt.Sprintf("m-%d", i))
	}
	if set.Len() != 10 {
		t.Fatalf("expected 10 live entries got %d", set.Len())
	}

	tick.Advance(2 * dedup.Retention)
	set.Seen("fresh") // triggers the opportunistic sweep
	if set.Len() != 1 {
		t.Fatalf("expected only the fresh entry after sweep got %d", set.Len())
	}
}

func TestSeenAtomicUnderConcurrency(t *testing.T) {
	t.Parallel()

	set := dedup.New(nil)
	const goroutines = 32

	var wg sync.WaitGroup
	first := make(chan bool, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !set.Seen("same-id") {
				first <- true
			}
		}()
	}
	wg.Wait()
	close(first)

	if got := len(first); got != 1 {
		t.Fatalf("exactly one goroutine must win the first sighting, got %d", got)
	}
}
