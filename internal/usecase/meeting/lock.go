package meeting

import (
	"sync"

	"github.com/google/uuid"
)

// meetingLocks serializes the confirm/evaluate/archive sequence per
// meeting. The backing store runs each statement transactionally; the
// keyed mutex closes the gap between evaluating the ledger and setting
// the archived flag.
type meetingLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newMeetingLocks() *meetingLocks {
	return &meetingLocks{locks: make(map[uuid.UUID]*lockEntry)}
}

// lock acquires the mutex for one meeting and returns its release func
func (l *meetingLocks) lock(id uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &lockEntry{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
