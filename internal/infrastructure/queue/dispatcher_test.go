package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []string
	done chan struct{}
	want int
}

func newRecordingSender(want int) *recordingSender {
	return &recordingSender{done: make(chan struct{}), want: want}
}

func (s *recordingSender) Send(_ context.Context, to, subject, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to+"|"+subject)
	if len(s.sent) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingSender) wait(t *testing.T) []string {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.sent))
	copy(out, s.sent)
	return out
}

func TestMailDispatcher_Delivers(t *testing.T) {
	sender := newRecordingSender(3)
	d := NewMailDispatcher(2, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i, to := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if err := d.Send(ctx, to, "subject", "body"); err != nil {
			t.Fatalf("enqueue %d failed: %v", i, err)
		}
	}

	sent := sender.wait(t)
	if len(sent) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(sent))
	}
}

func TestMailDispatcher_PerRecipientOrdering(t *testing.T) {
	const n = 20
	sender := newRecordingSender(n)
	d := NewMailDispatcher(4, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	subjects := make([]string, n)
	for i := range subjects {
		subjects[i] = string(rune('a' + i))
		if err := d.Send(ctx, "same@example.com", subjects[i], "body"); err != nil {
			t.Fatalf("enqueue failed: %v", err)
		}
	}

	sent := sender.wait(t)
	for i, entry := range sent {
		want := "same@example.com|" + subjects[i]
		if entry != want {
			t.Fatalf("out of order at %d: got %s, want %s", i, entry, want)
		}
	}
}

func TestMailDispatcher_StopsOnCancel(t *testing.T) {
	sender := newRecordingSender(1)
	d := NewMailDispatcher(1, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	if err := d.Send(ctx, "x@example.com", "subject", "body"); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	sender.wait(t)

	cancel()
	// Give workers a moment to observe the cancellation, then verify a
	// queued message is no longer picked up.
	time.Sleep(50 * time.Millisecond)
	_ = d.Send(context.Background(), "y@example.com", "subject", "body")
	time.Sleep(50 * time.Millisecond)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) != 1 {
		t.Fatalf("expected no deliveries after cancel, got %d", len(sender.sent))
	}
}
