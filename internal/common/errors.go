package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline errors. Handlers match on these to pick a response status, so they
// live here rather than in the package that first produces them.
var (
	// ErrFormatMismatch means a lab parser did not recognize the document.
	// Non-fatal: detection moves on to the next parser or the LLM fallback.
	ErrFormatMismatch = errors.New("document does not match lab format")

	// ErrNotBloodTest means the document was recognized but is not a blood
	// test report (for example a PCR or antibody test printout).
	ErrNotBloodTest = errors.New("document is not a blood test report")

	// ErrNormalization means a raw value could not be interpreted at all.
	ErrNormalization = errors.New("value normalization failed")

	// ErrExtractionParse means the model reply was not valid against the
	// report schema.
	ErrExtractionParse = errors.New("extraction response parse failed")

	// ErrExtractionTimeout means the extraction deadline elapsed.
	ErrExtractionTimeout = errors.New("extraction timed out")

	// ErrZeroLymphocytes guards the SII division.
	ErrZeroLymphocytes = errors.New("lymphocyte count is zero")

	// ErrUnsupportedCancerType means the ICD-10 code maps to no known group.
	ErrUnsupportedCancerType = errors.New("unsupported cancer type")

	ErrInvalidInput    = errors.New("invalid input")
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrNotFound        = errors.New("resource not found")
	ErrInternal        = errors.New("internal error")
	ErrDatabase        = errors.New("database error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
