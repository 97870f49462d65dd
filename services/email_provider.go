package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
	"github.com/rebirthstudio/portfolio-backend/config"
	"github.com/resend/resend-go/v2"
)

var (
	// ErrProviderNotConfigured means the selected provider has no credential.
	ErrProviderNotConfigured = errors.New("email provider credential not set")
	// ErrProviderRejected wraps an error result returned by the provider API.
	ErrProviderRejected = errors.New("email provider rejected message")
)

// OutboundEmail is a fully rendered message ready for a provider.
type OutboundEmail struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// EmailProvider delivers one message and returns the provider-assigned id.
// An error result from the provider API is returned as an error, never panics.
type EmailProvider interface {
	Name() string
	Send(ctx context.Context, email *OutboundEmail) (string, error)
}

// NewEmailProvider builds the provider selected in cfg. It returns
// ErrProviderNotConfigured when that provider's credential is empty.
func NewEmailProvider(cfg *config.EmailConfig) (EmailProvider, error) {
	if cfg.Credential() == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrProviderNotConfigured, cfg.CredentialEnvVar())
	}
	switch cfg.Provider {
	case config.ProviderPostmark:
		return NewPostmarkProvider(cfg.PostmarkServerToken), nil
	case config.ProviderResend, "":
		return NewResendProvider(cfg.ResendAPIKey), nil
	default:
		return nil, fmt.Errorf("unsupported email provider %q", cfg.Provider)
	}
}

// ResendProvider sends through the Resend API.
type ResendProvider struct {
	client *resend.Client
}

func NewResendProvider(apiKey string) *ResendProvider {
	return &ResendProvider{client: resend.NewClient(apiKey)}
}

func (p *ResendProvider) Name() string { return config.ProviderResend }

func (p *ResendProvider) Send(ctx context.Context, email *OutboundEmail) (string, error) {
	params := &resend.SendEmailRequest{
		From:    email.From,
		To:      []string{email.To},
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Html:    email.HTML,
	}

	resp, err := p.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: resend: %w", ErrProviderRejected, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: resend returned no response", ErrProviderRejected)
	}
	return resp.Id, nil
}

// PostmarkProvider sends through the Postmark API. Postmark reports some
// rejections with a 200 and a non-zero ErrorCode; those count as errors.
type PostmarkProvider struct {
	client *postmark.Client
}

// NewPostmarkProvider only needs the server token; account-level calls are never made.
func NewPostmarkProvider(serverToken string) *PostmarkProvider {
	return &PostmarkProvider{client: postmark.NewClient(serverToken, "")}
}

func (p *PostmarkProvider) Name() string { return config.ProviderPostmark }

func (p *PostmarkProvider) Send(ctx context.Context, email *OutboundEmail) (string, error) {
	resp, err := p.client.SendEmail(ctx, postmark.Email{
		From:     email.From,
		To:       email.To,
		ReplyTo:  email.ReplyTo,
		Subject:  email.Subject,
		HTMLBody: email.HTML,
		Tag:      "contact-form",
	})
	if err != nil {
		return "", fmt.Errorf("%w: postmark: %w", ErrProviderRejected, err)
	}
	if resp.ErrorCode > 0 {
		return "", fmt.Errorf("%w: postmark error %d: %s", ErrProviderRejected, resp.ErrorCode, resp.Message)
	}
	return resp.MessageID, nil
}
