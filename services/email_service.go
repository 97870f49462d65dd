package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rebirthstudio/portfolio-backend/config"
	apperrors "github.com/rebirthstudio/portfolio-backend/errors"
	"github.com/rebirthstudio/portfolio-backend/logger"
	"github.com/rebirthstudio/portfolio-backend/pkg/contactform"
	"go.uber.org/zap"
)

// Submission outcomes, used as the metric label.
const (
	OutcomeDelivered     = "delivered"
	OutcomeRejected      = "rejected"
	OutcomeFailed        = "failed"
	OutcomeNotConfigured = "not_configured"
	OutcomeError         = "error"
)

const receivedAtLayout = "January 2, 2006 at 3:04:05 PM MST"

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	submissions *prometheus.CounterVec
}

// EmailService turns contact submissions into operator emails.
// It is stateless between calls; provider is nil when no credential is set.
type EmailService struct {
	config   *config.EmailConfig
	provider EmailProvider
	reason   string
	tmpl     *template.Template
	metrics  *EmailMetrics
	now      func() time.Time
	log      *zap.SugaredLogger
}

// NewEmailService builds the provider from cfg. A missing credential leaves
// the service unconfigured rather than failing startup.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return newEmailService(cfg, prometheus.DefaultRegisterer)
}

func newEmailService(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	provider, err := NewEmailProvider(cfg)
	svc := NewEmailServiceWithRegistry(cfg, provider, reg)
	if err != nil {
		svc.reason = err.Error()
		svc.log.Warnw("Email service not configured", "error", err)
	}
	return svc
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, provider EmailProvider, reg prometheus.Registerer) *EmailService {
	log := logger.GetLogger()

	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_email_send_duration_seconds",
			Help:    "Time taken by the email provider to accept a message",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
	}
	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.submissions)

	svc := &EmailService{
		config:   cfg,
		provider: provider,
		tmpl:     template.Must(template.New("contact").Parse(contactEmailTemplate)),
		metrics:  metrics,
		now:      time.Now,
		log:      log,
	}
	if provider == nil {
		svc.reason = ErrProviderNotConfigured.Error()
	} else {
		log.Infow("Email service initialized",
			"provider", provider.Name(),
			"from", cfg.Sender(),
			"to", logger.MaskEmail(cfg.ToAddress))
	}
	return svc
}

// Configured reports whether a provider credential was supplied.
func (s *EmailService) Configured() bool {
	return s.provider != nil
}

// ConfigurationError returns the not-configured error, carrying the reason the
// provider could not be built, and counts the refused submission. It returns
// nil once a credential is set.
func (s *EmailService) ConfigurationError() error {
	if s.Configured() {
		return nil
	}
	s.record(OutcomeNotConfigured)
	return apperrors.ServiceNotConfigured(s.reason)
}

// ProviderName returns the active provider, or "" when unconfigured.
func (s *EmailService) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// SubmitContact validates sub and forwards it to the operator. It returns the
// provider message id, or an *errors.AppError describing the failure kind.
func (s *EmailService) SubmitContact(ctx context.Context, sub contactform.Submission) (string, error) {
	if err := s.ConfigurationError(); err != nil {
		return "", err
	}

	sub = sub.Normalize()
	fieldErrs := contactform.Validate(sub)
	if failure, failed := fieldErrs.Failure(); failed {
		s.record(OutcomeRejected)
		return "", apperrors.ValidationFailed(failure.Kind, failure.Message, fieldErrs.Messages())
	}

	email, err := s.BuildContactEmail(sub)
	if err != nil {
		s.record(OutcomeError)
		s.log.Errorw("Failed to render contact email", "error", err)
		return "", apperrors.Wrap(err, apperrors.ServerError, apperrors.MsgSendFailed)
	}

	// The send completes even if the submitter goes away mid-request.
	sendCtx := context.WithoutCancel(ctx)
	startTime := time.Now()
	id, err := s.provider.Send(sendCtx, email)
	s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	if err != nil {
		s.record(OutcomeFailed)
		s.log.Errorw("Failed to send contact email",
			"error", err,
			"provider", s.provider.Name(),
			"reply_to", logger.MaskEmail(sub.Email))
		return "", apperrors.DeliveryFailed(err)
	}

	s.record(OutcomeDelivered)
	s.log.Infow("Contact email sent",
		"id", id,
		"provider", s.provider.Name(),
		"reply_to", logger.MaskEmail(sub.Email))
	return id, nil
}

// BuildContactEmail renders the operator notification for a valid submission.
func (s *EmailService) BuildContactEmail(sub contactform.Submission) (*OutboundEmail, error) {
	if sub.Name == "" || sub.Email == "" {
		return nil, errors.New("submission has no name or email")
	}

	var html bytes.Buffer
	err := s.tmpl.Execute(&html, map[string]string{
		"Name":       sub.Name,
		"Email":      sub.Email,
		"Message":    sub.Message,
		"ReceivedAt": s.now().UTC().Format(receivedAtLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return &OutboundEmail{
		From:    s.config.Sender(),
		To:      s.config.ToAddress,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", sub.Name),
		HTML:    html.String(),
	}, nil
}

func (s *EmailService) record(outcome string) {
	s.metrics.submissions.WithLabelValues(outcome).Inc()
}

const contactEmailTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Contact Form Submission</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            background: linear-gradient(135deg, #bd9b60 0%, #2E2A2B 100%);
            padding: 30px;
            text-align: center;
            border-radius: 8px 8px 0 0;
        }
        .header h1 {
            color: #ffffff;
            margin: 0;
            font-size: 24px;
        }
        .content {
            background: #ffffff;
            padding: 30px;
            border: 1px solid #e0e0e0;
            border-top: none;
        }
        .field {
            margin-bottom: 20px;
        }
        .label {
            font-weight: 600;
            color: #2E2A2B;
            margin-bottom: 5px;
            display: block;
        }
        .value {
            color: #555;
            padding: 10px;
            background: #f7f7f7;
            border-radius: 4px;
        }
        .message-box {
            background: #f7f7f7;
            border-left: 4px solid #bd9b60;
            padding: 15px;
            border-radius: 4px;
            white-space: pre-wrap;
            word-wrap: break-word;
        }
        .footer {
            background: #f7f7f7;
            padding: 20px;
            text-align: center;
            border-radius: 0 0 8px 8px;
            font-size: 12px;
            color: #666;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>New Contact Form Submission</h1>
    </div>
    <div class="content">
        <div class="field">
            <span class="label">From:</span>
            <div class="value">{{.Name}}</div>
        </div>
        <div class="field">
            <span class="label">Email:</span>
            <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
        </div>
        <div class="field">
            <span class="label">Message:</span>
            <div class="message-box">{{.Message}}</div>
        </div>
    </div>
    <div class="footer">
        <p>This message was sent from your portfolio contact form at {{.ReceivedAt}}</p>
    </div>
</body>
</html>`
