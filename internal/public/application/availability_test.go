package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	err   error
	calls int
}

func (c *stubChecker) HealthCheck(context.Context) error {
	c.calls++
	return c.err
}

func TestAvailabilityToggleDisabledNeverProbes(t *testing.T) {
	checker := &stubChecker{}
	toggle := NewAvailabilityToggle(false, checker)

	assert.Equal(t, StateUnavailable, toggle.State())
	assert.Equal(t, StateUnavailable, toggle.Resolve(context.Background()))
	assert.Equal(t, 0, checker.calls, "フラグ無効時はヘルスチェックを呼ばない")

	assert.Equal(t, StateUnavailable, toggle.Recheck(context.Background()))
	assert.Equal(t, 0, checker.calls, "無効トグルは Recheck でもプローブしない")
}

func TestAvailabilityToggleNilCheckerIsUnavailable(t *testing.T) {
	toggle := NewAvailabilityToggle(true, nil)
	assert.Equal(t, StateUnavailable, toggle.Resolve(context.Background()))
}

func TestAvailabilityToggleLatchesSuccess(t *testing.T) {
	checker := &stubChecker{}
	toggle := NewAvailabilityToggle(true, checker)

	assert.Equal(t, StateChecking, toggle.State())
	assert.Equal(t, StateAvailable, toggle.Resolve(context.Background()))
	assert.Equal(t, StateAvailable, toggle.Resolve(context.Background()))
	assert.Equal(t, 1, checker.calls, "確定後はプローブしない")
}

func TestAvailabilityToggleLatchesFailure(t *testing.T) {
	checker := &stubChecker{err: errors.New("connection refused")}
	toggle := NewAvailabilityToggle(true, checker)

	assert.Equal(t, StateUnavailable, toggle.Resolve(context.Background()))

	// 以降バックエンドが復活しても、Recheck するまで unavailable のまま。
	checker.err = nil
	assert.Equal(t, StateUnavailable, toggle.Resolve(context.Background()))
	assert.Equal(t, 1, checker.calls)
}

func TestAvailabilityToggleRecheck(t *testing.T) {
	checker := &stubChecker{err: errors.New("connection refused")}
	toggle := NewAvailabilityToggle(true, checker)

	assert.Equal(t, StateUnavailable, toggle.Resolve(context.Background()))

	checker.err = nil
	assert.Equal(t, StateAvailable, toggle.Recheck(context.Background()))
	assert.Equal(t, StateAvailable, toggle.State())
	assert.Equal(t, 2, checker.calls)
}

func TestUseFallback(t *testing.T) {
	transport := &TransportError{Status: 500, Message: "down"}
	notFound := &NotFoundError{Resource: "building", ID: 1}

	assert.True(t, useFallback(StateChecking, nil))
	assert.True(t, useFallback(StateUnavailable, nil))
	assert.False(t, useFallback(StateAvailable, nil))
	assert.True(t, useFallback(StateAvailable, transport), "呼び出し単位のトランスポート失敗は退避")
	assert.False(t, useFallback(StateAvailable, notFound), "NotFound はデータの答えなので退避しない")
}

func TestAvailabilityStateString(t *testing.T) {
	assert.Equal(t, "checking", StateChecking.String())
	assert.Equal(t, "available", StateAvailable.String())
	assert.Equal(t, "unavailable", StateUnavailable.String())
}
