// cmd/veritas/error.go
package main

import "fmt"

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeFactCheck ErrorType = "factcheck"
	ErrorTypeNews      ErrorType = "news"
	ErrorTypeModel     ErrorType = "model"
	ErrorTypeConfig    ErrorType = "config"
	ErrorTypeAPI       ErrorType = "api"
	ErrorTypeInternal  ErrorType = "internal"
)

// VeritasError is the custom error type for the application. Pipeline
// clients return these internally; the orchestrator absorbs them into
// fallback transitions and never lets one cross its boundary.
type VeritasError struct {
	Type    ErrorType `json:"type"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Inner   error     `json:"inner,omitempty"`
}

func (e *VeritasError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("[%s-%s] %s: %v", e.Type, e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("[%s-%s] %s", e.Type, e.Code, e.Message)
}

func (e *VeritasError) Unwrap() error {
	return e.Inner
}

// NewError creates a new VeritasError
func NewError(errType ErrorType, code string, message string, inner error) *VeritasError {
	return &VeritasError{
		Type:    errType,
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// Common error constructors
func NewFactCheckError(code string, message string, inner error) *VeritasError {
	return NewError(ErrorTypeFactCheck, code, message, inner)
}

func NewNewsError(code string, message string, inner error) *VeritasError {
	return NewError(ErrorTypeNews, code, message, inner)
}

func NewModelError(code string, message string, inner error) *VeritasError {
	return NewError(ErrorTypeModel, code, message, inner)
}

func NewConfigError(code string, message string, inner error) *VeritasError {
	return NewError(ErrorTypeConfig, code, message, inner)
}

// Error codes
const (
	// Fact-check error codes
	ErrFactCheckDisabled = "FACTCHECK_001"
	ErrFactCheckRequest  = "FACTCHECK_002"
	ErrFactCheckStatus   = "FACTCHECK_003"
	ErrFactCheckDecode   = "FACTCHECK_004"

	// News search error codes
	ErrNewsDisabled = "NEWS_001"
	ErrNewsRequest  = "NEWS_002"
	ErrNewsStatus   = "NEWS_003"
	ErrNewsDecode   = "NEWS_004"

	// Model error codes
	ErrModelNotConfigured = "MODEL_001"
	ErrModelRequest       = "MODEL_002"
	ErrModelEmpty         = "MODEL_003"

	// Config error codes
	ErrConfigLoad       = "CONFIG_001"
	ErrConfigValidation = "CONFIG_002"
)

// IsStageDisabled reports whether an error means the stage has no
// credential configured, as opposed to a transport failure. Both fall
// through the cascade, but disabled stages are not worth warning about.
func IsStageDisabled(err error) bool {
	if ve, ok := err.(*VeritasError); ok {
		switch ve.Code {
		case ErrFactCheckDisabled, ErrNewsDisabled, ErrModelNotConfigured:
			return true
		}
	}
	return false
}
