package errors

// Helpers for mapping source API HTTP statuses onto project ErrorCodes

import "net/http"

// CodeForStatus classifies an upstream HTTP status
func CodeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusNotFound:
		return ErrorCodeNotFound
	case status == http.StatusUnauthorized:
		return ErrorCodeUnauthorized
	case status == http.StatusTooManyRequests, status == http.StatusForbidden:
		// GitHub and Stack Exchange both use 403 for exhausted quotas
		return ErrorCodeTooManyRequests
	case status == http.StatusBadRequest:
		return ErrorCodeInvalidArgument
	case status >= 500:
		return ErrorCodeUnavailable
	default:
		return ErrorCodeUpstream
	}
}

// FromStatus builds a source tagged error for a non 2xx upstream response
func FromStatus(status int, source, msg string) error {
	return WrapStatus(nil, status, source, msg)
}

// WrapStatus is FromStatus keeping orig (usually the transport's status error) as the cause
func WrapStatus(orig error, status int, source, msg string) error {
	return &Error{code: CodeForStatus(status), msg: msg, source: source, orig: orig}
}

// FromTransport wraps a transport failure (dial, tls, timeout) for source
func FromTransport(orig error, source, msg string) error {
	return &Error{code: ErrorCodeUnavailable, msg: msg, source: source, orig: orig}
}

// IsTransient reports whether err is an upstream failure where a later call may succeed
func IsTransient(err error) bool {
	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests:
		return true
	}
	return false
}
