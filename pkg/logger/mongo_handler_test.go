package logger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newDetachedHandler builds a MongoHandler around a client that never
// reaches a server; connecting is lazy and the short server-selection
// timeout makes any insert fail fast, which the drain loop ignores.
func newDetachedHandler(t *testing.T) *MongoHandler {
	t.Helper()

	opts := options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetConnectTimeout(100 * time.Millisecond).
		SetServerSelectionTimeout(100 * time.Millisecond)

	client, err := mongo.Connect(context.Background(), opts)
	require.NoError(t, err)

	h := &MongoHandler{
		col:     client.Database("test").Collection("logs"),
		client:  client,
		queue:   make(chan LogDocument, 16),
		done:    make(chan struct{}),
		drained: make(chan struct{}),
	}
	go h.drainLoop()
	return h
}

func record(msg string) slog.Record {
	return slog.NewRecord(time.Now(), slog.LevelInfo, msg, 0)
}

func TestCloseWaitsForDrain(t *testing.T) {
	h := newDetachedHandler(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, h.Handle(context.Background(), record("shutting down")))
	}

	h.Close()

	select {
	case <-h.drained:
	default:
		t.Fatal("Close returned while the drain loop was still running")
	}
	assert.Empty(t, h.queue, "queued records were handed to the final flush")

	h.Close() // second call must not hang or panic
}

func TestHandleNeverBlocksWhenQueueFull(t *testing.T) {
	h := &MongoHandler{
		queue:   make(chan LogDocument, 1),
		done:    make(chan struct{}),
		drained: make(chan struct{}),
	}
	// No drain loop: the queue stays full after the first record.
	require.NoError(t, h.Handle(context.Background(), record("first")))

	finished := make(chan struct{})
	go func() {
		_ = h.Handle(context.Background(), record("dropped"))
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Handle blocked on a full queue")
	}
	assert.Len(t, h.queue, 1)
}
