package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/testcreator/quiz-system/internal/core/ports"
)

type recordingViewService struct {
	mu     sync.Mutex
	events []ports.ViewEventInput
}

func (s *recordingViewService) Process(_ context.Context, event ports.ViewEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingViewService) snapshot() []ports.ViewEventInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.ViewEventInput(nil), s.events...)
}

func waitForEvents(t *testing.T, svc *recordingViewService, want int) []ports.ViewEventInput {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		events := svc.snapshot()
		if len(events) >= want {
			return events
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, got %d", want, len(svc.snapshot()))
	return nil
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	svc := &recordingViewService{}
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.ViewEventInput{QuizID: "quiz-1", ViewerID: "a"})
	d.Enqueue(ports.ViewEventInput{QuizID: "quiz-2", ViewerID: "b"})

	events := waitForEvents(t, svc, 2)
	seen := map[string]bool{}
	for _, e := range events {
		seen[e.QuizID] = true
	}
	if !seen["quiz-1"] || !seen["quiz-2"] {
		t.Fatalf("missing events: %+v", events)
	}
}

// Events for one quiz land on one worker, so their order is preserved.
func TestDispatcher_PerQuizOrdering(t *testing.T) {
	svc := &recordingViewService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	const n = 20
	for i := 0; i < n; i++ {
		d.Enqueue(ports.ViewEventInput{QuizID: "quiz-1", Seen: time.Unix(int64(i), 0)})
	}

	events := waitForEvents(t, svc, n)
	for i := 1; i < n; i++ {
		if events[i].Seen.Before(events[i-1].Seen) {
			t.Fatalf("events out of order at %d: %v then %v", i, events[i-1].Seen, events[i].Seen)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingViewService{}, zerolog.Nop())

	first := d.shardIndex("quiz-abc")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("quiz-abc"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}

// Enqueue never blocks the caller, even when no worker is draining.
func TestDispatcher_EnqueueNonBlocking(t *testing.T) {
	d := NewDispatcher(1, &recordingViewService{}, zerolog.Nop())
	// Not started: the buffer fills and further events are dropped.

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			d.Enqueue(ports.ViewEventInput{QuizID: "quiz-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a full queue")
	}
}
