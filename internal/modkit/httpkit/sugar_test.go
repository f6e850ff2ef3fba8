package httpkit

import (
	"net/http"
	"testing"
)

func TestSugar_MountsHandlers(t *testing.T) {
	r := &fakeRouter{}
	type req struct{ A int }
	ok := func(_ *http.Request) (any, error) { return "ok", nil }

	PostJSON(r, "/b", func(_ *http.Request, _ req) (any, error) { return "ok", nil })
	Get(r, "/g", ok)
	Post(r, "/h", ok)
	Delete(r, "/d", ok)

	want := []struct{ verb, path string }{
		{"POST", "/b"},
		{"GET", "/g"},
		{"POST", "/h"},
		{"DELETE", "/d"},
	}
	if len(r.recs) != len(want) {
		t.Fatalf("expected %d registrations, got %d", len(want), len(r.recs))
	}
	for i, w := range want {
		rec := r.recs[i]
		if rec.verb != w.verb || rec.path != w.path {
			t.Fatalf("registration %d = %s %s, want %s %s", i, rec.verb, rec.path, w.verb, w.path)
		}
		if rec.ph == nil {
			t.Fatalf("registration %d has nil handler", i)
		}
	}
}
