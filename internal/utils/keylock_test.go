package utils

import (
	"sync"
	"testing"
)

func TestKeyedLockMutualExclusion(t *testing.T) {
	l := NewKeyedLock()
	const goroutines = 50
	const increments = 100

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				unlock := l.Lock(42)
				counter++
				unlock()
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*increments {
		t.Fatalf("counter = %d, want %d", counter, goroutines*increments)
	}
}

func TestKeyedLockIndependentKeys(t *testing.T) {
	l := NewKeyedLock()
	unlockA := l.Lock(1)
	// A second key must not block while the first is held.
	done := make(chan struct{})
	go func() {
		unlockB := l.Lock(2)
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
}

func TestKeyedLockEntriesReleased(t *testing.T) {
	l := NewKeyedLock()
	unlock := l.Lock(7)
	unlock()

	l.mu.Lock()
	n := len(l.entries)
	l.mu.Unlock()
	if n != 0 {
		t.Fatalf("entries left after unlock: %d", n)
	}
}

// TestKeyedLockOneWinner simulates concurrent reservation attempts for
// the same room and range against an in-memory board: with the lock held
// across check-then-insert, exactly one attempt may succeed.
func TestKeyedLockOneWinner(t *testing.T) {
	l := NewKeyedLock()
	const roomID = 9
	const attempts = 20

	type span struct{ in, out int }
	booked := make([]span, 0, 1)
	overlaps := func(a, b span) bool { return a.in < b.out && b.in < a.out }

	var wg sync.WaitGroup
	winners := 0
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock(roomID)
			defer unlock()
			want := span{in: 10, out: 14}
			for _, s := range booked {
				if overlaps(s, want) {
					return
				}
			}
			booked = append(booked, want)
			winners++
		}()
	}
	wg.Wait()

	if winners != 1 {
		t.Fatalf("winners = %d, want exactly 1", winners)
	}
	if len(booked) != 1 {
		t.Fatalf("board has %d bookings, want 1", len(booked))
	}
}
