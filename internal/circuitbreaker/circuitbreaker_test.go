//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func fail() error    { return errBoom }
func succeed() error { return nil }

func testConfig() Config {
	return Config{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
		Name:             "test",
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	tests := []struct {
		name      string
		calls     []func() error
		wantErr   error
		wantState State
	}{
		{
			name:      "success keeps circuit closed",
			calls:     []func() error{succeed},
			wantState: StateClosed,
		},
		{
			name:      "single failure stays closed",
			calls:     []func() error{fail},
			wantErr:   errBoom,
			wantState: StateClosed,
		},
		{
			name:      "threshold failures open the circuit",
			calls:     []func() error{fail, fail},
			wantErr:   errBoom,
			wantState: StateOpen,
		},
		{
			name:      "open circuit rejects without calling",
			calls:     []func() error{fail, fail, succeed},
			wantErr:   ErrCircuitOpen,
			wantState: StateOpen,
		},
		{
			name:      "success resets failure count",
			calls:     []func() error{fail, succeed, fail},
			wantErr:   errBoom,
			wantState: StateClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := New(testConfig())
			var err error
			for _, call := range tt.calls {
				err = cb.Execute(context.Background(), call)
			}
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantState, cb.State())
		})
	}
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := New(testConfig())
	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	require.NoError(t, cb.Execute(context.Background(), succeed))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(context.Background(), succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig())
	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)

	time.Sleep(60 * time.Millisecond)

	assert.ErrorIs(t, cb.Execute(context.Background(), fail), errBoom)
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_IsFailure(t *testing.T) {
	notFound := errors.New("not found")
	cfg := testConfig()
	cfg.IsFailure = func(err error) bool { return !errors.Is(err, notFound) }
	cb := New(cfg)

	for i := 0; i < 5; i++ {
		err := cb.Execute(context.Background(), func() error { return notFound })
		assert.ErrorIs(t, err, notFound)
	}
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 0, cb.GetStats().FailureCount)
}

func TestCircuitBreaker_DoneContext(t *testing.T) {
	cb := New(testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
	assert.Equal(t, 0, cb.GetStats().FailureCount)
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var (
		mu          sync.Mutex
		transitions []string
	)
	cfg := testConfig()
	cfg.SuccessThreshold = 1
	cfg.OnStateChange = func(name string, from, to State) {
		mu.Lock()
		defer mu.Unlock()
		transitions = append(transitions, name+":"+from.String()+"->"+to.String())
	}
	cb := New(cfg)

	_ = cb.Execute(context.Background(), fail)
	_ = cb.Execute(context.Background(), fail)
	time.Sleep(60 * time.Millisecond)
	_ = cb.Execute(context.Background(), succeed)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"test:closed->open",
		"test:open->half-open",
		"test:half-open->closed",
	}, transitions)
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())

	stats := cb.GetStats()
	assert.Equal(t, "circuit-breaker", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)

	_ = cb.Execute(context.Background(), fail)

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.FailureThreshold)
	assert.Equal(t, 2, config.SuccessThreshold)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Nil(t, config.IsFailure)
}
