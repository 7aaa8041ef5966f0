package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"equiprent-backend/internal/logger"

	"github.com/google/uuid"
)

// Message is one outbound notification.
type Message struct {
	ID       string
	To       string
	ToName   string
	Subject  string
	Body     string
	HTMLBody string
}

// Sender delivers a single message. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Queue sends notifications asynchronously with bounded retries.
// Delivery is fire-and-forget: a job that exhausts its retries is
// logged and dropped, never surfaced to the caller.
type Queue struct {
	sender     Sender
	jobs       chan Message
	maxRetries int
	backoff    []time.Duration
	workers    int

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewQueue(sender Sender, workers, queueSize, maxRetries int, backoff []time.Duration) *Queue {
	if workers < 1 {
		workers = 1
	}
	if len(backoff) == 0 {
		backoff = []time.Duration{30 * time.Second, 60 * time.Second, 120 * time.Second}
	}
	return &Queue{
		sender:     sender,
		jobs:       make(chan Message, queueSize),
		maxRetries: maxRetries,
		backoff:    backoff,
		workers:    workers,
	}
}

// Start launches the worker goroutines.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.started = true

	ctx, q.cancel = context.WithCancel(ctx)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
}

// Stop cancels the workers and waits for in-flight jobs to finish.
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.started {
		q.mu.Unlock()
		return
	}
	q.started = false
	cancel := q.cancel
	q.mu.Unlock()

	cancel()
	q.wg.Wait()
}

// Enqueue adds a message to the queue, assigning an id when missing.
// It never blocks: a full queue returns an error.
func (q *Queue) Enqueue(msg Message) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	select {
	case q.jobs <- msg:
		return nil
	default:
		return fmt.Errorf("notification queue full, dropping message %s", msg.ID)
	}
}

func (q *Queue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	logger.Debug("Notification worker started", "worker", id)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Notification worker stopping", "worker", id)
			return
		case msg := <-q.jobs:
			q.process(ctx, msg)
		}
	}
}

// process attempts delivery up to maxRetries times, sleeping the
// configured backoff between attempts. The last backoff entry repeats
// when retries outnumber entries.
func (q *Queue) process(ctx context.Context, msg Message) {
	for attempt := 1; ; attempt++ {
		err := q.sender.Send(ctx, msg)
		if err == nil {
			logger.Debug("Notification sent", "id", msg.ID, "to", msg.To, "attempt", attempt)
			return
		}

		if attempt >= q.maxRetries {
			logger.Error("Notification dropped after retries exhausted",
				"id", msg.ID, "to", msg.To, "attempts", attempt, "error", err)
			return
		}

		delay := q.backoff[min(attempt-1, len(q.backoff)-1)]
		logger.Warn("Notification send failed, retrying",
			"id", msg.ID, "to", msg.To, "attempt", attempt, "retry_in", delay, "error", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}
