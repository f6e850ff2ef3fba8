package upstream

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// StatusError is a non 2xx response from a source API
type StatusError struct {
	Source string
	Status int
	Body   string
}

// Error interface
func (e *StatusError) Error() string {
	if e.Body == "" {
		return e.message()
	}
	return fmt.Sprintf("%s: %s", e.message(), e.Body)
}

// HTTPStatus returns the upstream status code
func (e *StatusError) HTTPStatus() int { return e.Status }

func (e *StatusError) message() string {
	return fmt.Sprintf("%s responded %d %s", e.Source, e.Status, http.StatusText(e.Status))
}

// StatusOf returns the upstream status carried by err, 0 when there is none
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
