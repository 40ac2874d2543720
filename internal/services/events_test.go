package services

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookshelf-api/internal/models"
)

func TestEventLog_DrainsOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	events := NewEventLog(logger, 2, 10)

	for _, kind := range []models.ChangeKind{models.BookCreated, models.BookUpdated, models.BookDeleted} {
		assert.True(t, events.Publish(models.ChangeEvent{Kind: kind, BookID: "abc", At: time.Now()}))
	}
	events.Shutdown()

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "book changed"))
	assert.Contains(t, out, "kind=created")
	assert.Contains(t, out, "kind=updated")
	assert.Contains(t, out, "kind=deleted")
	assert.Contains(t, out, "event log stopped")
}

func TestEventLog_PublishAfterShutdown(t *testing.T) {
	events := NewEventLog(slog.New(slog.NewTextHandler(io.Discard, nil)), 1, 1)
	events.Shutdown()
	events.Shutdown()

	assert.False(t, events.Publish(models.ChangeEvent{Kind: models.BookCreated}))
}

func TestEventLog_DropsWhenFull(t *testing.T) {
	var buf bytes.Buffer
	events := NewEventLog(slog.New(slog.NewTextHandler(&buf, nil)), 0, 1)

	assert.True(t, events.Publish(models.ChangeEvent{Kind: models.BookCreated, BookID: "a"}))
	assert.False(t, events.Publish(models.ChangeEvent{Kind: models.BookCreated, BookID: "b"}))
	assert.Contains(t, buf.String(), "event queue is full")

	events.Shutdown()
}
