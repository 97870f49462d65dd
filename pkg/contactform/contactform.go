// Package contactform holds the contact form rules shared by the server and
// every client. Validation is pure: the same Submission always yields the
// same FieldErrors, so the server can re-run it without trusting the caller.
package contactform

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Form field names, as they appear in the JSON payload.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Length bounds, inclusive, counted in characters after trimming.
const (
	NameMinLength    = 2
	NameMaxLength    = 100
	MessageMinLength = 10
	MessageMaxLength = 1000
)

// Class groups field errors the way the server reports them.
type Class string

const (
	ClassMissingField  Class = "missing_field"
	ClassLength        Class = "length_out_of_range"
	ClassMalformedMail Class = "malformed_email"
)

// Submission is one contact form payload.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Normalize returns a copy with surrounding whitespace removed from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimFunc(s.Name, isSpace),
		Email:   strings.TrimFunc(s.Email, isSpace),
		Message: strings.TrimFunc(s.Message, isSpace),
	}
}

// isSpace matches the whitespace set browsers use for trim() and \s: Unicode
// White_Space without NEL, plus the byte order mark.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// FieldError is the failure of one field.
type FieldError struct {
	Class   Class
	Message string
}

// FieldErrors maps a field name to its error. Empty means valid.
type FieldErrors map[string]FieldError

// Valid reports whether no field failed.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

// Messages flattens the errors into field -> message, the shape clients render.
func (fe FieldErrors) Messages() map[string]string {
	if len(fe) == 0 {
		return nil
	}
	out := make(map[string]string, len(fe))
	for field, err := range fe {
		out[field] = err.Message
	}
	return out
}

// emailShape is deliberately loose: something@something.something with no
// extra '@'. It is not RFC 5322. RE2's \s is ASCII only, so the tag also
// rejects any rune isSpace matches.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const contactEmailTag = "contactemail"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(contactEmailTag, func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return !strings.ContainsFunc(value, isSpace) && emailShape.MatchString(value)
	}); err != nil {
		panic(err)
	}
	return v
}

// rule pairs a validator tag with the class and message reported when it fails.
type rule struct {
	tag     string
	class   Class
	message string
}

var fieldRules = map[string][]rule{
	FieldName: {
		{"required", ClassMissingField, "Name is required"},
		{"min=2", ClassLength, "Name must be at least 2 characters"},
		{"max=100", ClassLength, "Name must be less than 100 characters"},
	},
	FieldEmail: {
		{"required", ClassMissingField, "Email is required"},
		{contactEmailTag, ClassMalformedMail, "Please enter a valid email address"},
	},
	FieldMessage: {
		{"required", ClassMissingField, "Message is required"},
		{"min=10", ClassLength, "Message must be at least 10 characters"},
		{"max=1000", ClassLength, "Message must be less than 1000 characters"},
	},
}

// Validate checks every field of the trimmed submission and returns the first
// failing rule per field.
func Validate(s Submission) FieldErrors {
	s = s.Normalize()
	errs := FieldErrors{}
	checkField(errs, FieldName, s.Name)
	checkField(errs, FieldEmail, s.Email)
	checkField(errs, FieldMessage, s.Message)
	return errs
}

// ValidateField runs the rules of a single field, as a form does on blur.
func ValidateField(field, value string) (FieldError, bool) {
	errs := FieldErrors{}
	checkField(errs, field, strings.TrimFunc(value, isSpace))
	err, failed := errs[field]
	return err, failed
}

func checkField(errs FieldErrors, field, value string) {
	for _, r := range fieldRules[field] {
		if validate.Var(value, r.tag) != nil {
			errs[field] = FieldError{Class: r.class, Message: r.message}
			return
		}
	}
}
