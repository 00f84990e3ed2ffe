package scheduler

import (
	"testing"
	"time"
)

func TestPollerEmitsOnInterval(t *testing.T) {
	poller, err := NewPoller(20*time.Millisecond, 4)
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}
	poller.Start()
	defer poller.Stop()

	first := waitPoll(t, poller.C(), time.Second)
	second := waitPoll(t, poller.C(), time.Second)
	if second.Seq <= first.Seq {
		t.Fatalf("expected increasing sequence: first=%d second=%d", first.Seq, second.Seq)
	}
}

func TestPollerDropsWhenConsumerIsSlow(t *testing.T) {
	poller, err := NewPoller(5*time.Millisecond, 1)
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}
	poller.Start()
	defer poller.Stop()

	time.Sleep(80 * time.Millisecond)
	if poller.Dropped() == 0 {
		t.Fatalf("expected dropped polls > 0, got %d", poller.Dropped())
	}
}

func TestPollerPokeFiresImmediately(t *testing.T) {
	poller, err := NewPoller(time.Hour, 1)
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}
	poller.Start()
	defer poller.Stop()

	poller.Poke()
	ev := waitPoll(t, poller.C(), time.Second)
	if ev.Seq != 1 {
		t.Fatalf("expected first poll, got seq %d", ev.Seq)
	}
}

func TestPollerStopClosesChannelAndIsIdempotent(t *testing.T) {
	poller, err := NewPoller(time.Hour, 1)
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}
	poller.Start()
	poller.Stop()
	poller.Stop()

	select {
	case _, ok := <-poller.C():
		if ok {
			t.Fatal("expected closed channel after stop")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}

	poller.Start()
	poller.Poke()
}

func TestNewPollerValidatesInterval(t *testing.T) {
	if _, err := NewPoller(0, 1); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
}

func waitPoll(t *testing.T, ch <-chan PollEvent, timeout time.Duration) PollEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("poll channel closed")
		}
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for poll")
		return PollEvent{}
	}
}
