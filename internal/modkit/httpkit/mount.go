package httpkit

import (
	"net/http"
	"strings"
)

// APIVersion is the version segment every devfeed module is served under
const APIVersion = "v1"

// MountUnder opens prefix on r, applies mw when given, then hands the scoped router to mount
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI is MountUnder at /api/{version}
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(), func(api httpkit.Router) {
//	  portfolio.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, APIPrefix(version), mw, mount)
}

// MountAPIV1 is MountAPI for APIVersion
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, APIVersion, mw, mount)
}

// APIPrefix renders /api/{version}, tolerating stray slashes around version
func APIPrefix(version string) string {
	return "/api/" + strings.Trim(version, "/ ")
}
