// Package contactclient is the submitting side of the contact form: local
// validation, a single in-flight POST to /api/contact, and the toast text a
// front end shows for each outcome.
package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rebirthstudio/portfolio-backend/pkg/contactform"
)

const contactPath = "/api/contact"

// Toast texts shown to the submitter.
const (
	ToastInvalidForm = "Please fix the errors in the form"
	ToastServerError = "Server error. Please try again later."
	ToastSent        = "Message sent successfully! I'll get back to you soon."
	ToastSendFailed  = "Failed to send message. Please try again."
	ToastUnreachable = "Something went wrong. Please try again later."
)

var (
	ErrInvalidForm          = errors.New("contact form has invalid fields")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
)

// Result is what the submitter sees after a submit.
type Result struct {
	Success bool
	ID      string
	Toast   string
	// Fields holds per-field messages, from local validation or a 400 answer.
	Fields map[string]string
	Status int
}

type serverResponse struct {
	Success bool              `json:"success"`
	ID      string            `json:"id"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

// Client posts contact submissions to the portfolio backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	busy       atomic.Bool
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Busy reports whether a submission is in flight.
func (c *Client) Busy() bool {
	return c.busy.Load()
}

// Submit validates sub and, if it passes, posts it. Outcomes the server
// decides (success, rejection, delivery failure) come back as a Result with a
// nil error. An error is returned when nothing was sent (ErrInvalidForm,
// ErrSubmissionInProgress) or the request did not complete; the Result is
// still filled in for the first and last of those.
func (c *Client) Submit(ctx context.Context, sub contactform.Submission) (*Result, error) {
	if fieldErrs := contactform.Validate(sub.Normalize()); !fieldErrs.Valid() {
		return &Result{Toast: ToastInvalidForm, Fields: fieldErrs.Messages()}, ErrInvalidForm
	}

	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInProgress
	}
	defer c.busy.Store(false)

	jsonData, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+contactPath, bytes.NewReader(jsonData))
	if err != nil {
		return &Result{Toast: ToastUnreachable}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &Result{Toast: ToastUnreachable}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	result := &Result{Status: resp.StatusCode}

	if !isJSON(resp.Header.Get("Content-Type")) {
		result.Toast = ToastServerError
		return result, nil
	}

	var body serverResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		result.Toast = ToastUnreachable
		return result, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		result.Success = true
		result.ID = body.ID
		result.Toast = ToastSent
		return result, nil
	}

	result.Fields = body.Fields
	result.Toast = body.Error
	if result.Toast == "" {
		result.Toast = ToastSendFailed
	}
	return result, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}
