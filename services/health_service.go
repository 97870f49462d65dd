package services

import (
	"context"
	"time"

	"github.com/rebirthstudio/portfolio-backend/logger"
	"github.com/rebirthstudio/portfolio-backend/types"
	"go.uber.org/zap"
)

// EmailStatus is the slice of EmailService the health check needs.
type EmailStatus interface {
	Configured() bool
	ProviderName() string
}

type HealthService struct {
	email     EmailStatus
	version   string
	startedAt time.Time
	log       *zap.SugaredLogger
}

func NewHealthService(email EmailStatus, version string) *HealthService {
	return &HealthService{
		email:     email,
		version:   version,
		startedAt: time.Now(),
		log:       logger.GetLogger(),
	}
}

// CheckHealth reports DEGRADED when no provider credential is set: the
// server still answers, but every submission is refused.
func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	emailStatus := h.checkEmail()
	components["email"] = emailStatus
	if emailStatus.Status != types.HealthStatusUp {
		overallStatus = types.HealthStatusDegraded
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
	}
}

func (h *HealthService) checkEmail() types.HealthComponent {
	if !h.email.Configured() {
		h.log.Warn("Health check: email provider credential not set")
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "Email provider credential not set",
		}
	}
	return types.HealthComponent{
		Status:  types.HealthStatusUp,
		Details: "provider: " + h.email.ProviderName(),
	}
}
