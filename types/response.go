package types

// ErrorResponse is the body of every error answer. Fields is only set for
// validation failures and maps each offending form field to its message.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
