package testutil

import (
	"context"
	"sync"

	"codeberg.org/snonux/ocrtrain/internal/config"
)

// TrainCall records one invocation of MockTrainer
type TrainCall struct {
	Resolved *config.Resolved
	AMP      bool
}

// MockTrainer records training requests instead of running a trainer
type MockTrainer struct {
	mu    sync.Mutex
	Calls []TrainCall
	Err   error
}

// Train records the call and returns the configured error
func (m *MockTrainer) Train(ctx context.Context, resolved *config.Resolved, amp bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	m.Calls = append(m.Calls, TrainCall{Resolved: resolved, AMP: amp})
	return m.Err
}
