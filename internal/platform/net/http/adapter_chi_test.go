package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func header(name string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set(name, "1")
			next.ServeHTTP(w, req)
		})
	}
}

func write(code int, body string) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}
}

func TestAdaptChi_RoutesGroupsAndMiddleware(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(header("X-Root"))
	r.Get("/root", write(200, "root"))
	r.Handle("/std", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		_, _ = w.Write([]byte("std"))
	}))

	r.Group(func(gr Router) {
		gr.Use(header("X-Group"))
		if gr.Mux() == nil {
			t.Fatalf("group Mux() returned nil")
		}
		gr.Post("/g/post", write(201, ""))
		gr.Delete("/g/del", write(204, ""))
	})

	r.Route("/api", func(sr Router) {
		sr.Use(header("X-Route"))
		sr.Route("/v1", func(nr Router) {
			nr.Get("/ok", write(200, "v1ok"))
		})
	})

	do := func(method, path string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(method, path, nil))
		return rr
	}

	if rr := do(stdhttp.MethodGet, "/root"); rr.Code != 200 || rr.Body.String() != "root" || rr.Header().Get("X-Root") != "1" {
		t.Fatalf("GET /root => %d %q", rr.Code, rr.Body.String())
	}
	if rr := do(stdhttp.MethodGet, "/std"); rr.Body.String() != "std" {
		t.Fatalf("GET /std => %q", rr.Body.String())
	}
	if rr := do(stdhttp.MethodPost, "/g/post"); rr.Code != 201 || rr.Header().Get("X-Group") != "1" {
		t.Fatalf("POST /g/post => %d", rr.Code)
	}
	if rr := do(stdhttp.MethodDelete, "/g/del"); rr.Code != 204 {
		t.Fatalf("DELETE /g/del => %d", rr.Code)
	}
	rr := do(stdhttp.MethodGet, "/api/v1/ok")
	if rr.Code != 200 || rr.Body.String() != "v1ok" {
		t.Fatalf("GET /api/v1/ok => %d %q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get("X-Root") != "1" || rr.Header().Get("X-Route") != "1" || rr.Header().Get("X-Group") != "" {
		t.Fatalf("middleware scoping wrong: %v", rr.Header())
	}
	if rr := do(stdhttp.MethodPost, "/root"); rr.Code != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("POST /root => %d, want 405", rr.Code)
	}
}
