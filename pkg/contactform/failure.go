package contactform

// Failure kinds the server reports for invalid input.
const (
	KindMissingFields        = "missing_fields"
	KindInvalidNameLength    = "invalid_name_length"
	KindInvalidEmail         = "invalid_email"
	KindInvalidMessageLength = "invalid_message_length"
)

// Failure is the single categorized reason the server answers with.
type Failure struct {
	Kind    string
	Message string
}

// Failure picks the first categorized failure in the server's fixed order:
// any missing field, then name length, then email shape, then message length.
// ok is false when the submission is valid.
func (fe FieldErrors) Failure() (f Failure, ok bool) {
	if fe.Valid() {
		return Failure{}, false
	}
	for _, err := range fe {
		if err.Class == ClassMissingField {
			return Failure{Kind: KindMissingFields, Message: "All fields are required"}, true
		}
	}
	if _, failed := fe[FieldName]; failed {
		return Failure{Kind: KindInvalidNameLength, Message: "Name must be between 2 and 100 characters"}, true
	}
	if _, failed := fe[FieldEmail]; failed {
		return Failure{Kind: KindInvalidEmail, Message: "Invalid email address"}, true
	}
	return Failure{Kind: KindInvalidMessageLength, Message: "Message must be between 10 and 1000 characters"}, true
}
