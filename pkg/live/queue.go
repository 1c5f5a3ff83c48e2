package live

import (
	"sync/atomic"
	"time"

	"github.com/harunnryd/speechline-go/pkg/errorsx"
)

// sendQueue is the bounded FIFO between callers and the single writer.
// Pushes block for at most maxWait when the queue is saturated, then fail
// with a backpressure error. Frames are never silently dropped.
type sendQueue struct {
	ch      chan outboundFrame
	maxWait time.Duration

	pushed  atomic.Int64
	dropped atomic.Int64
}

func newSendQueue(capacity int, maxWait time.Duration) *sendQueue {
	return &sendQueue{
		ch:      make(chan outboundFrame, capacity),
		maxWait: maxWait,
	}
}

// push enqueues one frame, honoring the bounded backpressure wait. done
// aborts the wait when the connection is torn down mid-push.
func (q *sendQueue) push(f outboundFrame, done <-chan struct{}) error {
	select {
	case q.ch <- f:
		q.pushed.Add(1)
		return nil
	default:
	}

	timer := time.NewTimer(q.maxWait)
	defer timer.Stop()
	select {
	case q.ch <- f:
		q.pushed.Add(1)
		return nil
	case <-done:
		return errorsx.New(errorsx.ReasonLiveState, "connection closed while enqueueing")
	case <-timer.C:
		q.dropped.Add(1)
		return errorsx.New(errorsx.ReasonLiveBackpressure, "send queue saturated")
	}
}

// discard drains any pending frames. Only forced teardown uses this.
func (q *sendQueue) discard() {
	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}

func (q *sendQueue) len() int { return len(q.ch) }
