package services

import (
	"log/slog"
	"sync"

	"bookshelf-api/internal/models"
)

// EventLog fans catalog change events out to a pool of workers that write
// them to the log. Publishing never blocks; a full queue drops the event.
type EventLog struct {
	queue   chan models.ChangeEvent
	workers int
	wg      sync.WaitGroup
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool
}

func NewEventLog(logger *slog.Logger, workers, queueSize int) *EventLog {
	l := &EventLog{
		queue:   make(chan models.ChangeEvent, queueSize),
		workers: workers,
		logger:  logger,
	}

	for i := 0; i < workers; i++ {
		l.wg.Add(1)
		go l.worker(i)
	}

	return l
}

func (l *EventLog) worker(id int) {
	defer l.wg.Done()

	for event := range l.queue {
		l.logger.Info("book changed",
			slog.Int("worker", id),
			slog.String("kind", string(event.Kind)),
			slog.String("book_id", event.BookID),
			slog.String("name", event.Name),
			slog.Time("at", event.At),
		)
	}
	l.logger.Debug("event worker stopped", slog.Int("worker", id))
}

// Publish queues event and reports whether it was accepted.
func (l *EventLog) Publish(event models.ChangeEvent) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return false
	}

	select {
	case l.queue <- event:
		return true
	default:
		l.logger.Warn("event queue is full, dropping event",
			slog.String("kind", string(event.Kind)),
			slog.String("book_id", event.BookID),
		)
		return false
	}
}

// Shutdown stops accepting events and waits for the workers to drain the queue.
func (l *EventLog) Shutdown() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()

	l.wg.Wait()
	l.logger.Info("event log stopped", slog.Int("workers", l.workers))
}
