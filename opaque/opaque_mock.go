package opaque

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
)

// MockSender is a mock implementation of the Sender interface
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Post(ctx context.Context, endpoint string, payload any) mo.Result[Accepted] {
	args := m.Called(ctx, endpoint, payload)
	return args.Get(0).(mo.Result[Accepted])
}
