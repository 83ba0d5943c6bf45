package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// Action errors. Every one of them ends the current action.
var (
	ErrMissingCredential    = goerr.New("slack account is not linked")
	ErrInvalidPresence      = goerr.New("invalid presence")
	ErrInvalidDuration      = goerr.New("invalid snooze duration")
	ErrInvalidTime          = goerr.New("invalid clock time")
	ErrPermissionDenied     = goerr.New("location permission not granted")
	ErrDeviceAddressFailed  = goerr.New("device address lookup failed")
	ErrGeocodeFailed        = goerr.New("geocode failed")
	ErrTimezoneLookupFailed = goerr.New("timezone lookup failed")
	ErrUpstreamActionFailed = goerr.New("upstream action failed")
)

// Context keys for error values
const (
	OperationKey = "operation"
	StatusKey    = "upstream_status"
	DurationKey  = "duration"
	ClockKey     = "clock"
	DeviceIDKey  = "device_id"
)

// UpstreamError carries an error string reported by an upstream API. Message is kept
// verbatim so that it can be spoken back to the user unmodified.
type UpstreamError struct {
	kind    error
	Message string
}

// NewUpstreamError creates an UpstreamError of the given kind
// (ErrUpstreamActionFailed, ErrDeviceAddressFailed, ErrGeocodeFailed or
// ErrTimezoneLookupFailed).
func NewUpstreamError(kind error, message string) *UpstreamError {
	return &UpstreamError{kind: kind, Message: message}
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.kind
}

// UpstreamMessage extracts the verbatim upstream message from err, if any
func UpstreamMessage(err error) (string, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Message, true
	}
	return "", false
}
