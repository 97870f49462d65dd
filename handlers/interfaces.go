package handlers

import (
	"context"

	"github.com/rebirthstudio/portfolio-backend/pkg/contactform"
	"github.com/rebirthstudio/portfolio-backend/types"
)

// ContactServiceInterface defines the contact submission methods needed by handlers
type ContactServiceInterface interface {
	ConfigurationError() error
	SubmitContact(ctx context.Context, sub contactform.Submission) (string, error)
}

// HealthServiceInterface defines the health check methods needed by handlers
type HealthServiceInterface interface {
	CheckHealth(ctx context.Context) types.HealthCheck
}
