// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/webinar-landing/internal/config"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

// countingLoader counts Refresh calls and returns the defaults, or err when
// set.
type countingLoader struct {
	calls atomic.Int32
	err   error
}

func (l *countingLoader) Refresh(context.Context) (models.LandingConfig, error) {
	l.calls.Add(1)
	if l.err != nil {
		return models.LandingConfig{}, l.err
	}
	return models.DefaultLandingConfig(), nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NotPanics(t, func() { ws.Run(context.Background()) })
}

func TestNewWorkers(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     int
	}{
		{"refresh disabled", 0, 0},
		{"negative interval", -time.Second, 0},
		{"refresh enabled", time.Minute, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewWorkers(&countingLoader{}, config.Sheet{RefreshInterval: tt.interval}, logger.Nop())

			require.NotNil(t, ws)
			assert.Len(t, ws.workers, tt.want)
		})
	}
}

func TestConfigRefresher_ReloadsOnTick(t *testing.T) {
	loader := &countingLoader{}
	r := NewConfigRefresher(loader, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Run(ctx)

	assert.Eventually(t, func() bool { return loader.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestConfigRefresher_KeepsRunningAfterFailure(t *testing.T) {
	loader := &countingLoader{err: errors.New("sheet unavailable")}
	r := NewConfigRefresher(loader, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Run(ctx)

	assert.Eventually(t, func() bool { return loader.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestConfigRefresher_StopsOnCancel(t *testing.T) {
	loader := &countingLoader{}
	r := NewConfigRefresher(loader, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.loop(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after cancellation")
	}
}

func TestConfigRefresher_NoLoadBeforeFirstTick(t *testing.T) {
	loader := &countingLoader{}
	r := NewConfigRefresher(loader, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	r.Run(ctx)
	cancel()

	assert.Zero(t, loader.calls.Load())
}
