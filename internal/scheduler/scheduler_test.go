package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type countingWarmer struct {
	calls atomic.Int32
	err   error
}

func (w *countingWarmer) WarmRankings(context.Context) error {
	w.calls.Add(1)
	return w.err
}

type countingChecker struct {
	calls atomic.Int32
	err   error
}

func (c *countingChecker) CheckAlerts(context.Context) (int, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := NewScheduler("not a schedule", &countingWarmer{}, zap.NewNop())
	assert.Error(t, s.Start())
}

func TestStartWarmsImmediately(t *testing.T) {
	w := &countingWarmer{}
	s := NewScheduler("@hourly", w, nil)
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return w.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
}

func TestWarmFailureIsLogged(t *testing.T) {
	w := &countingWarmer{err: errors.New("store unavailable")}
	s := NewScheduler("@hourly", w, zap.NewNop())
	s.warmRankings()
	assert.Equal(t, int32(1), w.calls.Load())
}

func TestStartRejectsBadAlertSchedule(t *testing.T) {
	s := NewScheduler("@hourly", &countingWarmer{}, nil)
	s.AddAlertCheck("every now and then", &countingChecker{})
	assert.Error(t, s.Start())
}

func TestAlertCheckRuns(t *testing.T) {
	c := &countingChecker{}
	s := NewScheduler("@hourly", &countingWarmer{}, nil)
	s.AddAlertCheck("@every 1s", c)
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool { return c.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestAlertCheckFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	c := &countingChecker{err: errors.New("store unavailable")}
	s := NewScheduler("@hourly", &countingWarmer{}, zap.New(core))
	s.AddAlertCheck("@every 15m", c)

	s.checkAlerts()
	assert.Equal(t, int32(1), c.calls.Load())
	assert.Equal(t, 1, logs.FilterMessage("failed to check low stock alerts").Len())
}
