package handlers

import (
	"context"

	"github.com/rebirthstudio/portfolio-backend/services"
	"github.com/rebirthstudio/portfolio-backend/types"
	"github.com/stretchr/testify/mock"
)

// MockEmailProvider stands in for Resend/Postmark in handler tests.
type MockEmailProvider struct {
	mock.Mock
}

func (m *MockEmailProvider) Name() string { return "mock" }

func (m *MockEmailProvider) Send(ctx context.Context, email *services.OutboundEmail) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

// MockHealthService implements HealthServiceInterface.
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	args := m.Called(ctx)
	return args.Get(0).(types.HealthCheck)
}
