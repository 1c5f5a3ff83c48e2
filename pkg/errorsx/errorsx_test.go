package errorsx

import "testing"

func TestWrapAndReason(t *testing.T) {
	err := Wrap(assertErr{}, ReasonLiveConnect)
	if Reason(err) != ReasonLiveConnect {
		t.Fatalf("expected reason %s, got %s", ReasonLiveConnect, Reason(err))
	}
	if !HasReason(err, ReasonLiveConnect) {
		t.Fatalf("expected HasReason true")
	}
}

func TestWrapPreservesExistingReason(t *testing.T) {
	first := Wrap(assertErr{}, ReasonLiveState)
	second := Wrap(first, ReasonLiveBackpressure)
	if Reason(second) != ReasonLiveState {
		t.Fatalf("expected reason preserved, got %s", Reason(second))
	}
}

func TestReasonNil(t *testing.T) {
	if Reason(nil) != ReasonUnknown {
		t.Fatalf("expected unknown reason for nil error")
	}
	if Wrap(nil, ReasonLiveSend) != nil {
		t.Fatalf("expected nil wrap of nil error")
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
