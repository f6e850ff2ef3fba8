package net

import (
	"net/http"

	perr "devfeed/internal/platform/errors"
)

// Wire is a common envelope used by transports
// error_code, source and path are only set on failures
// data is always rendered, null for failures and absent lookups
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	ErrorCode  string         `json:"error_code,omitempty"`
	Source     string         `json:"source,omitempty"`
	Path       string         `json:"path,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data"`
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Wire) {
	return http.StatusOK, Wire{
		StatusCode: http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		RequestID:  reqID,
		Data:       data,
	}
}

// NoContent builds a 204 envelope
func NoContent(reqID string) (int, Wire) {
	return http.StatusNoContent, Wire{
		StatusCode: http.StatusNoContent,
		Status:     http.StatusText(http.StatusNoContent),
		RequestID:  reqID,
	}
}

// Error builds an error envelope for the query path that failed
// unclassified errors keep their message but render INTERNAL_SERVER_ERROR
func Error(err error, reqID, path string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		ErrorCode:  w.ErrorCode,
		Source:     w.Source,
		Path:       path,
		RequestID:  reqID,
	}
}
