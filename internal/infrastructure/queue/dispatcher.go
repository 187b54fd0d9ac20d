package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/testcreator/quiz-system/internal/api/metrics"
	"github.com/testcreator/quiz-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes quiz view events to a fixed set of workers using
// consistent hashing on the quiz id, guaranteeing per-quiz ordering of
// view-count updates.
type Dispatcher struct {
	workers []chan ports.ViewEventInput
	service ports.ViewService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ViewEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ViewEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its quiz. The call is
// non-blocking up to channelBuffer capacity; beyond that the event is dropped
// rather than stalling the request path.
func (d *Dispatcher) Enqueue(event ports.ViewEventInput) {
	idx := d.shardIndex(event.QuizID)
	select {
	case d.workers[idx] <- event:
		metrics.ViewQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().Str("quiz_id", event.QuizID).Int("worker_id", idx).Msg("view queue full, event dropped")
	}
}

// shardIndex maps a quiz id deterministically to a worker index.
func (d *Dispatcher) shardIndex(quizID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(quizID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ViewEventInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.ViewQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Process(ctx, event); err != nil {
				metrics.QuizViewErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("quiz_id", event.QuizID).
					Int("worker_id", id).
					Msg("view event processing failed")
				continue
			}
			metrics.QuizViewsTotal.Inc()
		}
	}
}
