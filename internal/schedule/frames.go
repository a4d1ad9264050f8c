// Package schedule holds the single-threaded scheduling primitives the frame
// loop drives: a next-frame queue and a delayed-callback queue.
package schedule

import "time"

type FrameFunc func(now time.Time)

// FrameQueue defers callbacks to the next display refresh.
type FrameQueue struct {
	pending []FrameFunc
	spare   []FrameFunc
}

func (q *FrameQueue) RequestFrame(fn FrameFunc) {
	q.pending = append(q.pending, fn)
}

// Run executes the callbacks that were queued before the call. Callbacks
// requested while running are held for the next Run.
func (q *FrameQueue) Run(now time.Time) {
	batch := q.pending
	q.pending = q.spare[:0]
	for i, fn := range batch {
		fn(now)
		batch[i] = nil
	}
	q.spare = batch[:0]
}

func (q *FrameQueue) Len() int { return len(q.pending) }
