package httpkit

import (
	"net/http"
	"strings"

	perrs "devfeed/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// Param returns the trimmed route parameter name
func Param(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}

// RequireParam returns the route parameter or an invalid argument error when blank
func RequireParam(r *http.Request, name string) (string, error) {
	v := Param(r, name)
	if v == "" {
		return "", perrs.WithField(perrs.InvalidArgf("missing path parameter %s", name), name)
	}
	return v, nil
}
