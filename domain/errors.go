package domain

// ValidationError reports the first input field that failed validation.
// Message is safe to show to the caller as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
