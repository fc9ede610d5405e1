package application

import (
	"context"
	"sync"
)

// AvailabilityState はリモートデータソースの到達可否を表す。
type AvailabilityState int

const (
	StateChecking AvailabilityState = iota
	StateAvailable
	StateUnavailable
)

func (s AvailabilityState) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAvailable:
		return "available"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// AvailabilityToggle はセッション単位でリモート接続可否をラッチする状態機械。
// checking → available | unavailable と遷移し、一度確定した状態は Recheck で
// 明示的に再判定しない限り維持される。自動リトライやバックオフは行わない。
type AvailabilityToggle struct {
	mu      sync.Mutex
	enabled bool
	state   AvailabilityState
	checker HealthChecker
}

// NewAvailabilityToggle constructs the session toggle.
// enabled が false（またはチェッカー未設定）の場合はプローブせず unavailable で確定する。
func NewAvailabilityToggle(enabled bool, checker HealthChecker) *AvailabilityToggle {
	state := StateChecking
	if !enabled || checker == nil {
		state = StateUnavailable
	}
	return &AvailabilityToggle{
		enabled: enabled && checker != nil,
		state:   state,
		checker: checker,
	}
}

// Resolve は未確定の場合のみヘルスチェックを 1 回実行し、結果をラッチして返す。
// 確定済みならプローブせずラッチ済みの状態を返す。
func (t *AvailabilityToggle) Resolve(ctx context.Context) AvailabilityState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateChecking {
		return t.state
	}

	if err := t.checker.HealthCheck(ctx); err != nil {
		t.state = StateUnavailable
	} else {
		t.state = StateAvailable
	}
	return t.state
}

// Recheck は呼び出し側主導の再判定。状態を checking に戻してから Resolve する。
func (t *AvailabilityToggle) Recheck(ctx context.Context) AvailabilityState {
	t.mu.Lock()
	if !t.enabled {
		t.state = StateUnavailable
		t.mu.Unlock()
		return StateUnavailable
	}
	t.state = StateChecking
	t.mu.Unlock()

	return t.Resolve(ctx)
}

// State はプローブせずに現在の状態を返す。
func (t *AvailabilityToggle) State() AvailabilityState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// useFallback は (セッション状態, 直前の呼び出しエラー) からローカルデータへ
// 切り替えるべきかを決める唯一の判定関数。セッション単位の判定と呼び出し単位の
// 判定を各呼び出し箇所で重複させないためにここへ集約している。
func useFallback(state AvailabilityState, lastErr error) bool {
	if state != StateAvailable {
		return true
	}
	return lastErr != nil && IsTransport(lastErr)
}
