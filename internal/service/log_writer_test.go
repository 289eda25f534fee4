//go:build !integration

package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tileworks/tile-estimator/internal/domain/model"
	"github.com/tileworks/tile-estimator/internal/mocks"
)

func testWriterConfig() LogWriterConfig {
	return LogWriterConfig{
		BufferSize:    10,
		BatchSize:     3,
		FlushInterval: 10 * time.Millisecond,
		WriteTimeout:  time.Second,
	}
}

func TestNewLogWriter_NilService(t *testing.T) {
	w := NewLogWriter(nil, testWriterConfig())

	assert.Nil(t, w)
	assert.False(t, w.Log(&model.LogEntry{}))
	assert.Equal(t, LogWriterStats{}, w.Stats())
	w.Stop()
}

func TestLogWriter_BatchesAndFlushesOnStop(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	var mu sync.Mutex
	var sizes []int
	svc.On("CreateLogs", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			mu.Lock()
			sizes = append(sizes, len(args.Get(1).([]*model.LogEntry)))
			mu.Unlock()
		}).
		Return(nil)

	cfg := testWriterConfig()
	cfg.FlushInterval = time.Hour
	w := NewLogWriter(svc, cfg)

	for i := 0; i < 4; i++ {
		assert.True(t, w.Log(&model.LogEntry{Message: "request"}))
	}
	w.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{3, 1}, sizes)
	assert.Equal(t, LogWriterStats{Enqueued: 4, Written: 4}, w.Stats())
}

func TestLogWriter_FlushInterval(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLogs", mock.Anything, mock.Anything).Return(nil)

	w := NewLogWriter(svc, testWriterConfig())
	defer w.Stop()

	w.Log(&model.LogEntry{Message: "single"})

	assert.Eventually(t, func() bool {
		return w.Stats().Written == 1
	}, time.Second, 5*time.Millisecond)
}

func TestLogWriter_WriteFailure(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLogs", mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	w := NewLogWriter(svc, testWriterConfig())
	w.Log(&model.LogEntry{})
	w.Log(&model.LogEntry{})
	w.Stop()

	assert.Equal(t, int64(2), w.Stats().Failed)
	assert.Zero(t, w.Stats().Written)
}

func TestLogWriter_LogAfterStop(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	w := NewLogWriter(svc, testWriterConfig())
	w.Stop()
	w.Stop()

	assert.False(t, w.Log(&model.LogEntry{}))
	assert.Equal(t, int64(1), w.Stats().Dropped)
}

func TestLogWriter_ConcurrentLogAndStop(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLogs", mock.Anything, mock.Anything).Return(nil).Maybe()
	w := NewLogWriter(svc, testWriterConfig())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				w.Log(&model.LogEntry{})
			}
		}()
	}
	w.Stop()
	wg.Wait()

	stats := w.Stats()
	assert.Equal(t, int64(8*50), stats.Enqueued+stats.Dropped)
	assert.Equal(t, stats.Enqueued, stats.Written)
}
