package engine

import (
	"sync"
	"time"

	"github.com/gammazero/chanqueue"
)

// Queue is an unbounded FIFO of commands shared between an input producer
// and the game loop. Every push is kept; nothing is coalesced.
// It implements InputSource.
type Queue struct {
	cq *chanqueue.ChanQueue[Command]

	mu     sync.RWMutex
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{cq: chanqueue.New[Command]()}
}

// Push appends a command. It never blocks for long and reports false once
// the queue has been closed.
func (q *Queue) Push(cmd Command) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return false
	}
	q.cq.In() <- cmd
	return true
}

// Next returns the oldest command, waiting up to timeout for one.
// A closed and drained queue reports CmdExit so the consumer cannot outlive
// its producer.
func (q *Queue) Next(timeout time.Duration) (Command, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case cmd, ok := <-q.cq.Out():
		if !ok {
			return CmdExit, true
		}
		return cmd, true
	case <-timer.C:
		return CmdNone, false
	}
}

// Len returns the number of queued commands.
func (q *Queue) Len() int {
	return q.cq.Len()
}

// Close stops accepting commands. Already queued commands can still be read.
// Safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.cq.Close()
}
