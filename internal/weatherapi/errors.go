package weatherapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Messages shown to the user when the provider gives nothing better
const (
	FallbackMessage   = "Unable to fetch weather data"
	UnexpectedMessage = "An unexpected error occurred"
)

// Kind classifies client failures
type Kind int

const (
	KindUnknown Kind = iota
	KindProvider
	KindTransport
	KindDecode
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindProvider:
		return "PROVIDER_ERROR"
	case KindTransport:
		return "TRANSPORT_ERROR"
	case KindDecode:
		return "DECODE_ERROR"
	case KindConfig:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error is returned by the client for every failed lookup
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status, 0 when no response was received
	Code       int    // provider error code from the JSON payload
	Message    string // human-readable message
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage is the text the widget displays
func (e *Error) UserMessage() string {
	if e.Message == "" {
		return FallbackMessage
	}
	return e.Message
}

// InputError reports whether the provider rejected the query itself (unknown
// or malformed city) as opposed to failing for reasons the input cannot fix.
func (e *Error) InputError() bool {
	if e.Kind != KindProvider {
		return false
	}
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusNotFound
}

// UserMessage extracts the displayable message from any error
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return UnexpectedMessage
}

// IsInputError reports whether err was caused by the query value
func IsInputError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.InputError()
}
