package types

// ContactRequest is the JSON body of POST /api/contact. Rules are enforced by
// pkg/contactform, not by binding tags, so every failure gets its own kind.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse is returned when the provider accepted the message.
type ContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}
