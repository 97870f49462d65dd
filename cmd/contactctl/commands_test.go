package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	out, err := runCmd(t, "validate", "--name", "Jo", "--email", "jo@x.com", "--message", "Hello there!")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")

	out, err = runCmd(t, "validate", "--name", "J", "--email", "jo@x", "--message", "Hello there!")
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "email: Please enter a valid email address")
	assert.Contains(t, out, "name: Name must be at least 2 characters")
	assert.Contains(t, out, "server would answer: Name must be between 2 and 100 characters")
}

func TestSendCmd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"id":"msg_cli"}`))
	}))
	defer server.Close()

	out, err := runCmd(t, "send", "--url", server.URL,
		"--name", "Jo", "--email", "jo@x.com", "--message", "Hello there!")

	require.NoError(t, err)
	assert.Contains(t, out, "Message sent successfully!")
	assert.Contains(t, out, "message id: msg_cli")
}

func TestSendCmd_ServerRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Email service not configured"}`))
	}))
	defer server.Close()

	out, err := runCmd(t, "send", "--url", server.URL,
		"--name", "Jo", "--email", "jo@x.com", "--message", "Hello there!")

	assert.Error(t, err)
	assert.Contains(t, out, "Email service not configured")
}
