package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Resend client
type mockEmailsService struct {
	mock.Mock
}

func (m *mockEmailsService) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func (m *mockEmailsService) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.SendEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Update(params *resend.UpdateEmailRequest) (*resend.UpdateEmailResponse, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.UpdateEmailResponse), args.Error(1)
}

func (m *mockEmailsService) UpdateWithContext(ctx context.Context, params *resend.UpdateEmailRequest) (*resend.UpdateEmailResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.UpdateEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Cancel(id string) (*resend.CancelScheduledEmailResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.CancelScheduledEmailResponse), args.Error(1)
}

func (m *mockEmailsService) CancelWithContext(ctx context.Context, id string) (*resend.CancelScheduledEmailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.CancelScheduledEmailResponse), args.Error(1)
}

func (m *mockEmailsService) Get(id string) (*resend.Email, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.Email), args.Error(1)
}

func (m *mockEmailsService) GetWithContext(ctx context.Context, id string) (*resend.Email, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resend.Email), args.Error(1)
}

func testOutbound() *OutboundEmail {
	return &OutboundEmail{
		From:    "Portfolio Contact <contact@rebirthstudio.org>",
		To:      "owner@example.com",
		ReplyTo: "jo@x.com",
		Subject: "New Contact Form Submission from Jo",
		HTML:    "<p>Hello there!</p>",
	}
}

func TestResendProvider_Send(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mockEmailsService)
		expectedID  string
		expectError bool
	}{
		{
			name: "successful send",
			setupMock: func(m *mockEmailsService) {
				m.On("SendWithContext", mock.Anything, mock.MatchedBy(func(r *resend.SendEmailRequest) bool {
					return r.ReplyTo == "jo@x.com" &&
						len(r.To) == 1 && r.To[0] == "owner@example.com" &&
						r.Html == "<p>Hello there!</p>"
				})).Return(&resend.SendEmailResponse{Id: "re_123"}, nil)
			},
			expectedID: "re_123",
		},
		{
			name: "provider error",
			setupMock: func(m *mockEmailsService) {
				m.On("SendWithContext", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEmails := &mockEmailsService{}
			tt.setupMock(mockEmails)

			provider := NewResendProvider("re_test")
			provider.client.Emails = mockEmails

			id, err := provider.Send(context.Background(), testOutbound())
			if tt.expectError {
				assert.ErrorIs(t, err, ErrProviderRejected)
				assert.ErrorIs(t, err, assert.AnError)
				assert.Empty(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, id)
			}
			mockEmails.AssertExpectations(t)
		})
	}
}

func TestPostmarkProvider_Send(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        map[string]interface{}
		expectedID  string
		expectError bool
	}{
		{
			name:       "accepted",
			status:     http.StatusOK,
			body:       map[string]interface{}{"To": "owner@example.com", "MessageID": "pm-42", "ErrorCode": 0, "Message": "OK"},
			expectedID: "pm-42",
		},
		{
			name:        "rejected with error code",
			status:      http.StatusUnprocessableEntity,
			body:        map[string]interface{}{"ErrorCode": 300, "Message": "Invalid 'From' address"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received map[string]interface{}
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "pm-token", r.Header.Get("X-Postmark-Server-Token"))
				_ = json.NewDecoder(r.Body).Decode(&received)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer srv.Close()

			provider := NewPostmarkProvider("pm-token")
			provider.client.BaseURL = srv.URL

			id, err := provider.Send(context.Background(), testOutbound())
			if tt.expectError {
				assert.ErrorIs(t, err, ErrProviderRejected)
				assert.Empty(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
			assert.Equal(t, "jo@x.com", received["ReplyTo"])
			assert.Equal(t, "owner@example.com", received["To"])
			assert.Equal(t, "contact-form", received["Tag"])
		})
	}
}
