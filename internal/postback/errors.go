package postback

import "errors"

const (
	// ErrInvalidParameters is returned when a required query parameter is missing or malformed.
	ErrInvalidParameters = constError("Missing or invalid parameters")
	// ErrInvalidSignature is returned when the received hash does not match the expected one.
	ErrInvalidSignature = constError("Invalid hash")
)

// IsValidationError checks if the error is a parameter validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidParameters)
}

// IsSignatureError checks if the error is a signature mismatch.
func IsSignatureError(err error) bool {
	return errors.Is(err, ErrInvalidSignature)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
