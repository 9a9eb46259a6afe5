package utils

import "sync"

// KeyedLock provides a mutex per uint64 key.  The booking service locks
// the room id for the duration of a reservation transaction so that
// concurrent requests for the same room serialize in-process before
// they contend on database row locks.  Entries are reference counted
// and removed once the last holder unlocks, so the map does not grow
// with the key space.
type KeyedLock struct {
	mu      sync.Mutex
	entries map[uint64]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedLock returns an empty KeyedLock.
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{entries: make(map[uint64]*lockEntry)}
}

// Lock acquires the mutex for key, blocking while another goroutine
// holds it.  The returned function releases the lock and must be called
// exactly once.
func (l *KeyedLock) Lock(key uint64) func() {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &lockEntry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, key)
		}
		l.mu.Unlock()
	}
}
