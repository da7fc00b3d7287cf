package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"wecom-relay/pkg/wecom"
)

// Mock logger for testing
type mockLogger struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, template)
}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock webhook client recording every payload it was asked to send.
type mockClient struct {
	resp     wecom.APIResponse
	err      error
	payloads []string
}

func (m *mockClient) Send(ctx context.Context, payload any) (wecom.APIResponse, error) {
	b, _ := json.Marshal(payload)
	m.payloads = append(m.payloads, string(b))
	return m.resp, m.err
}
