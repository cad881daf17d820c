package errors

// FieldError describes a single field-level defect: which field, a
// machine-readable code, a human-readable message, and optionally the value
// that was received. Immutable once constructed.
type FieldError struct {
	Field    string `json:"field"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Received any    `json:"received,omitempty"`
}

// ValidationErrors collects field errors in insertion order. An empty
// collection is a success value and never surfaces as a failure; a non-empty
// one converts into exactly one Validation failure via Err.
type ValidationErrors struct {
	errors []FieldError
}

// NewValidationErrors creates an empty collection.
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{}
}

// Add appends one field error.
func (v *ValidationErrors) Add(field, code, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Code: code, Message: message})
}

// AddWithValue appends one field error including the received value.
func (v *ValidationErrors) AddWithValue(field, code, message string, received any) {
	v.errors = append(v.errors, FieldError{Field: field, Code: code, Message: message, Received: received})
}

// IsEmpty reports whether no field errors were recorded.
func (v *ValidationErrors) IsEmpty() bool { return len(v.errors) == 0 }

// Len returns the number of recorded field errors.
func (v *ValidationErrors) Len() int { return len(v.errors) }

// FieldErrors returns a copy of the recorded errors in insertion order.
func (v *ValidationErrors) FieldErrors() []FieldError {
	out := make([]FieldError, len(v.errors))
	copy(out, v.errors)
	return out
}

// Err returns nil when the collection is empty, otherwise a single
// Validation failure carrying every recorded field error in order.
func (v *ValidationErrors) Err() error {
	if v.IsEmpty() {
		return nil
	}
	return Validation(v)
}
