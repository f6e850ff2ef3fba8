// Package errors is the project error type: a machine code, a message,
// and the upstream source the failure came from
//
// import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"strconv"
)

// ErrorCode classifies an error for the HTTP boundary
// the numeric values are part of the wire format, append only
type ErrorCode uint16

const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified, renders as 500
	ErrorCodePanic                            // recovered panic
	ErrorCodeUnavailable                      // upstream down or timing out
	ErrorCodeTooManyRequests                  // upstream quota exhausted
	ErrorCodeUnauthorized                     // upstream rejected our token
	ErrorCodeForbidden
	ErrorCodeInvalidArgument // query parameter out of range
	ErrorCodeValidation      // struct tag validation
	ErrorCodeJSON            // malformed request body
	ErrorCodeNotFound
	ErrorCodeUpstream // upstream answered with a status we do not classify
)

var statusByCode = map[ErrorCode]int{
	ErrorCodeUnknown:         http.StatusInternalServerError,
	ErrorCodePanic:           http.StatusInternalServerError,
	ErrorCodeUnavailable:     http.StatusServiceUnavailable,
	ErrorCodeTooManyRequests: http.StatusTooManyRequests,
	ErrorCodeUnauthorized:    http.StatusUnauthorized,
	ErrorCodeForbidden:       http.StatusForbidden,
	ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
	ErrorCodeValidation:      http.StatusBadRequest,
	ErrorCodeJSON:            http.StatusBadRequest,
	ErrorCodeNotFound:        http.StatusNotFound,
	ErrorCodeUpstream:        http.StatusBadGateway,
}

// HTTPStatusCode maps c to a status, unknown codes give 500
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := statusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// InternalLabel is the error_code of anything unclassified
const InternalLabel = "INTERNAL_SERVER_ERROR"

// Error carries a code plus optional field and source tags around a cause
type Error struct {
	orig   error
	msg    string
	code   ErrorCode
	field  string
	source string
}

// Wire is the error as rendered in a response envelope
type Wire struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	ErrorCode string    `json:"error_code"`
	Field     string    `json:"field,omitempty"`
	Source    string    `json:"source,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return e.msg + ": " + e.orig.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the classification
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending input, if any
func (e *Error) Field() string { return e.field }

// Source names the upstream (github, stackoverflow, blog), if any
func (e *Error) Source() string { return e.source }

// Message is the error text without its cause
func (e *Error) Message() string { return e.msg }

// WireFrom renders any error for the boundary; nil gives the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	e, ok := As(err)
	if !ok {
		return Wire{Code: ErrorCodeUnknown, Message: err.Error(), ErrorCode: InternalLabel}
	}
	return Wire{Code: e.code, Message: e.msg, ErrorCode: Label(e), Field: e.field, Source: e.source}
}

// Label is ERROR_<status> for classified errors and InternalLabel otherwise
func Label(err error) string {
	c := CodeOf(err)
	if c == ErrorCodeUnknown {
		return InternalLabel
	}
	return "ERROR_" + strconv.Itoa(HTTPStatusCode(c))
}

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf returns err's code, Unknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// SourceOf returns err's source tag or ""
func SourceOf(err error) string {
	if e, ok := As(err); ok {
		return e.source
	}
	return ""
}

func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is HTTPStatusCode(CodeOf(err))
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WithField returns a copy of err tagged with field; foreign errors pass through
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

// WithSource returns a copy of err tagged with source
// a foreign error is wrapped as Unknown so the tag reaches the envelope
func WithSource(err error, source string) error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		c := *e
		c.source = source
		return &c
	}
	return &Error{code: ErrorCodeUnknown, msg: err.Error(), source: source, orig: err}
}

func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

func NotFoundf(format string, a ...any) error   { return Newf(ErrorCodeNotFound, format, a...) }
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }
func JSONErrf(format string, a ...any) error    { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error   { return Newf(ErrorCodePanic, format, a...) }
func Internalf(format string, a ...any) error   { return Newf(ErrorCodeUnknown, format, a...) }
