package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/logger"
)

// LogSink accepts log entries without blocking the caller.
type LogSink interface {
	Log(entry *model.LogEntry) bool
}

// LogWriterConfig holds configuration for the batching log writer.
type LogWriterConfig struct {
	// BufferSize is the capacity of the entry queue. Entries beyond it are dropped.
	BufferSize int
	// BatchSize is the most entries written in one call.
	BatchSize int
	// FlushInterval bounds how long an entry waits in a partial batch.
	FlushInterval time.Duration
	// WriteTimeout bounds each bulk write.
	WriteTimeout time.Duration
}

// DefaultLogWriterConfig returns the production defaults.
func DefaultLogWriterConfig() LogWriterConfig {
	return LogWriterConfig{
		BufferSize:    1000,
		BatchSize:     50,
		FlushInterval: time.Second,
		WriteTimeout:  5 * time.Second,
	}
}

// LogWriter queues log entries and writes them in batches from a single
// goroutine, so request handling never waits on the database.
type LogWriter struct {
	svc     LoggingService
	cfg     LogWriterConfig
	entryCh chan *model.LogEntry
	done    chan struct{}
	log     zerolog.Logger

	// mu guards closed. Senders hold the read lock so Stop cannot close
	// entryCh under them.
	mu     sync.RWMutex
	closed bool

	enqueued atomic.Int64
	dropped  atomic.Int64
	written  atomic.Int64
	failed   atomic.Int64
}

// NewLogWriter starts a writer. It returns nil when svc is nil, and a nil
// *LogWriter drops everything.
func NewLogWriter(svc LoggingService, cfg LogWriterConfig) *LogWriter {
	if svc == nil {
		return nil
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 1
	}

	w := &LogWriter{
		svc:     svc,
		cfg:     cfg,
		entryCh: make(chan *model.LogEntry, cfg.BufferSize),
		done:    make(chan struct{}),
		log:     logger.Component("log_writer"),
	}
	go w.run()
	return w
}

// Log enqueues entry. It returns false when the queue is full or the writer
// has stopped.
func (w *LogWriter) Log(entry *model.LogEntry) bool {
	if w == nil {
		return false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		w.dropped.Add(1)
		return false
	}
	select {
	case w.entryCh <- entry:
		w.enqueued.Add(1)
		return true
	default:
		w.dropped.Add(1)
		return false
	}
}

func (w *LogWriter) run() {
	defer close(w.done)

	ticker := time.NewTicker(w.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]*model.LogEntry, 0, w.cfg.BatchSize)
	for {
		select {
		case entry, ok := <-w.entryCh:
			if !ok {
				w.flush(batch)
				return
			}
			batch = append(batch, entry)
			if len(batch) >= w.cfg.BatchSize {
				w.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(batch)
				batch = batch[:0]
			}
		}
	}
}

func (w *LogWriter) flush(batch []*model.LogEntry) {
	if len(batch) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.WriteTimeout)
	defer cancel()

	// CreateLogs keeps the slice only for the duration of the call.
	if err := w.svc.CreateLogs(ctx, batch); err != nil {
		w.failed.Add(int64(len(batch)))
		w.log.Warn().Err(err).Int("entries", len(batch)).Msg("failed to write log batch")
		return
	}
	w.written.Add(int64(len(batch)))
}

// Stop flushes queued entries and waits for the writer to exit.
func (w *LogWriter) Stop() {
	if w == nil {
		return
	}
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.entryCh)
	}
	w.mu.Unlock()
	<-w.done
}

// LogWriterStats is a snapshot of the writer counters.
type LogWriterStats struct {
	Enqueued int64 `json:"enqueued"`
	Dropped  int64 `json:"dropped"`
	Written  int64 `json:"written"`
	Failed   int64 `json:"failed"`
}

// Stats returns the writer counters.
func (w *LogWriter) Stats() LogWriterStats {
	if w == nil {
		return LogWriterStats{}
	}
	return LogWriterStats{
		Enqueued: w.enqueued.Load(),
		Dropped:  w.dropped.Load(),
		Written:  w.written.Load(),
		Failed:   w.failed.Load(),
	}
}
