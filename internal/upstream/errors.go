package upstream

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per Kind. They can be checked with errors.Is against
// any *Error returned by the client.
var (
	// ErrUpstreamUnavailable is returned when the API answers with a non-2xx status.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrMalformedResponse is returned when a 2xx response has an unexpected body.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrNetworkFailure is returned when the request could not be sent or completed.
	ErrNetworkFailure = errors.New("network failure")
)

// Kind classifies an upstream failure.
type Kind int

const (
	KindNetworkFailure Kind = iota + 1
	KindUpstreamUnavailable
	KindMalformedResponse
)

func (k Kind) String() string {
	switch k {
	case KindNetworkFailure:
		return "network_failure"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNetworkFailure:
		return ErrNetworkFailure
	case KindUpstreamUnavailable:
		return ErrUpstreamUnavailable
	case KindMalformedResponse:
		return ErrMalformedResponse
	default:
		return nil
	}
}

// Error describes a failed call to the external API.
type Error struct {
	Kind Kind
	// Op names the operation, e.g. "login" or "statistics".
	Op string
	// Status is the HTTP status code, when a response was received.
	Status int
	// Detail is the human-readable "detail" field of an error body, if any.
	Detail string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("upstream %s: %s", e.Op, e.Kind)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the error's Kind.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return target == e.Kind.sentinel()
}

// Detail extracts the upstream "detail" message from err, if it carries one.
func Detail(err error) (string, bool) {
	var upErr *Error
	if errors.As(err, &upErr) && upErr.Detail != "" {
		return upErr.Detail, true
	}
	return "", false
}
