package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	args := m.Called(ctx, key, window)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounter) Count(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounter) Reset(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
