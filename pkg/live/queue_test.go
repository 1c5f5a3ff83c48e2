package live

import (
	"testing"
	"time"

	"github.com/harunnryd/speechline-go/pkg/errorsx"
)

func TestQueuePushAndDrain(t *testing.T) {
	q := newSendQueue(4, 50*time.Millisecond)
	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		if err := q.push(outboundFrame{audio: []byte{byte(i)}, seq: uint64(i)}, done); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if q.len() != 4 {
		t.Fatalf("expected 4 queued frames, got %d", q.len())
	}

	for i := 0; i < 4; i++ {
		f := <-q.ch
		if f.seq != uint64(i) {
			t.Fatalf("expected frame %d, got seq %d", i, f.seq)
		}
	}
}

func TestQueueBackpressureTimeout(t *testing.T) {
	q := newSendQueue(1, 20*time.Millisecond)
	done := make(chan struct{})

	if err := q.push(outboundFrame{audio: []byte{1}}, done); err != nil {
		t.Fatalf("push: %v", err)
	}

	start := time.Now()
	err := q.push(outboundFrame{audio: []byte{2}}, done)
	if err == nil {
		t.Fatalf("expected backpressure error")
	}
	if !errorsx.HasReason(err, errorsx.ReasonLiveBackpressure) {
		t.Fatalf("expected reason %s, got %s", errorsx.ReasonLiveBackpressure, errorsx.Reason(err))
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected push to wait out the grace period, returned after %v", elapsed)
	}
	if q.dropped.Load() != 1 {
		t.Fatalf("expected 1 dropped frame, got %d", q.dropped.Load())
	}
}

func TestQueuePushAbortsOnDone(t *testing.T) {
	q := newSendQueue(1, time.Second)
	done := make(chan struct{})
	if err := q.push(outboundFrame{audio: []byte{1}}, done); err != nil {
		t.Fatalf("push: %v", err)
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		close(done)
	}()

	start := time.Now()
	err := q.push(outboundFrame{audio: []byte{2}}, done)
	if err == nil {
		t.Fatalf("expected error when connection closes mid-push")
	}
	if !errorsx.HasReason(err, errorsx.ReasonLiveState) {
		t.Fatalf("expected reason %s, got %s", errorsx.ReasonLiveState, errorsx.Reason(err))
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("push did not abort promptly, took %v", elapsed)
	}
}

func TestQueueDiscard(t *testing.T) {
	q := newSendQueue(8, time.Millisecond)
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		if err := q.push(outboundFrame{audio: []byte{byte(i)}}, done); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	q.discard()
	if q.len() != 0 {
		t.Fatalf("expected empty queue after discard, got %d", q.len())
	}
}
