package schedule

import (
	"sort"
	"time"
)

type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Time
	fn       func()
}

// Timers is a delayed-callback queue advanced explicitly by its owner. It is
// not safe for concurrent use; all calls come from the frame loop.
type Timers struct {
	now    time.Time
	nextID TimerID
	queue  []timer
}

func NewTimers(now time.Time) *Timers {
	return &Timers{now: now}
}

func (t *Timers) Now() time.Time { return t.now }

// After schedules fn to run once d has elapsed past the current time.
func (t *Timers) After(d time.Duration, fn func()) TimerID {
	t.nextID++
	tm := timer{id: t.nextID, deadline: t.now.Add(d), fn: fn}
	// Insert after every timer with a deadline <= ours to keep FIFO order on ties.
	i := sort.Search(len(t.queue), func(i int) bool {
		return t.queue[i].deadline.After(tm.deadline)
	})
	t.queue = append(t.queue, timer{})
	copy(t.queue[i+1:], t.queue[i:])
	t.queue[i] = tm
	return tm.id
}

// Cancel drops a pending timer. It reports false if id already fired or
// was cancelled.
func (t *Timers) Cancel(id TimerID) bool {
	for i, tm := range t.queue {
		if tm.id == id {
			t.queue = append(t.queue[:i], t.queue[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock to now and runs every due callback in deadline
// order. Callbacks see Now() equal to their own deadline, so timers they
// schedule are measured from the moment they fired.
func (t *Timers) Advance(now time.Time) {
	for len(t.queue) > 0 && !t.queue[0].deadline.After(now) {
		tm := t.queue[0]
		t.queue = t.queue[1:]
		if tm.deadline.After(t.now) {
			t.now = tm.deadline
		}
		tm.fn()
	}
	if now.After(t.now) {
		t.now = now
	}
}

func (t *Timers) Pending() int { return len(t.queue) }
