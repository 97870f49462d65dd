package contactclient

import (
	"maps"
	"time"

	"github.com/rebirthstudio/portfolio-backend/pkg/contactform"
)

// CloseDelay is how long a form stays open after a successful send.
const CloseDelay = 1500 * time.Millisecond

// Form is the state of an open contact form, driven by discrete input events.
type Form struct {
	Values     contactform.Submission
	Errors     map[string]string
	Submitting bool
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{Errors: map[string]string{}}
}

// Change sets one field and clears its error.
func (f *Form) Change(field, value string) {
	switch field {
	case contactform.FieldName:
		f.Values.Name = value
	case contactform.FieldEmail:
		f.Values.Email = value
	case contactform.FieldMessage:
		f.Values.Message = value
	default:
		return
	}
	delete(f.Errors, field)
}

// Validate replaces the error set with the result of checking every field.
func (f *Form) Validate() bool {
	fieldErrs := contactform.Validate(f.Values.Normalize())
	f.Errors = fieldErrs.Messages()
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	return fieldErrs.Valid()
}

// BeginSubmit marks the form busy. It returns false if it already was.
func (f *Form) BeginSubmit() bool {
	if f.Submitting {
		return false
	}
	f.Submitting = true
	return true
}

// Finish applies a submit outcome and returns how long to wait before
// closing the form; zero means it stays open. Values survive a failure so
// the user does not retype them.
func (f *Form) Finish(result *Result) time.Duration {
	f.Submitting = false
	if result == nil {
		return 0
	}
	if !result.Success {
		if len(result.Fields) > 0 {
			f.Errors = maps.Clone(result.Fields)
		}
		return 0
	}
	f.Values = contactform.Submission{}
	f.Errors = map[string]string{}
	return CloseDelay
}
