package httpkit

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perrs "devfeed/internal/platform/errors"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// mkReq builds an *http.Request with an optional body
func mkReq(t *testing.T, method string, body io.Reader) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, "http://x.test/y", body)
}

// run executes a Handler and returns status code and body
func run(h Handler, r *http.Request) (int, string) {
	rec := httptest.NewRecorder()
	h(rec, r)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }() // explicitly ignore close error

	b, _ := io.ReadAll(res.Body)
	return rec.Code, string(b)
}

func TestHandle_PassThrough(t *testing.T) {
	h := Handle(func(_ *http.Request) Response {
		return Response{Status: http.StatusAccepted, Body: "queued"}
	})
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, code)
	}
	if !strings.Contains(body, "queued") {
		t.Fatalf("expected body to contain %q, got %q", "queued", body)
	}
}

func TestCall_PlainValue_OKWrap(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return map[string]string{"a": "1"}, nil
	})
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", code)
	}
	if !strings.Contains(body, `"a":"1"`) {
		t.Fatalf("expected body to contain a=1, got %q", body)
	}
}

func TestCall_ResponsePassthrough(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return Response{Status: http.StatusNoContent}, nil
	})
	code, body := run(h, mkReq(t, http.MethodDelete, nil))
	if code != http.StatusNoContent || body != "" {
		t.Fatalf("expected bare 204, got %d %q", code, body)
	}
}

func TestCall_ErrorPath(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return nil, perrs.WithSource(perrs.NotFoundf("gone"), "blog")
	})
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	for _, want := range []string{`"error_code":"ERROR_404"`, `"source":"blog"`, `"path":"/y"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %s, got %q", want, body)
		}
	}
}

type filterIn struct {
	Tag   string `json:"tag,omitempty" validate:"omitempty,topic"`
	Limit *int   `json:"limit,omitempty" validate:"omitempty,min=0"`
}

func TestJSON_SuccessPlainValue(t *testing.T) {
	h := JSON(func(r *http.Request, got filterIn) (any, error) {
		if got.Tag != "go" || got.Limit == nil || *got.Limit != 3 {
			t.Fatalf("decoded mismatch: %#v", got)
		}
		return map[string]any{"seen": true, "ua": r.UserAgent()}, nil
	})
	req := mkReq(t, http.MethodPost, strings.NewReader(`{"tag":"go","limit":3}`))
	req.Header.Set("User-Agent", "ua/1")
	code, body := run(h, req)
	if code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", code)
	}
	if !strings.Contains(body, `"seen":true`) {
		t.Fatalf("expected body to contain seen=true, got %q", body)
	}
}

func TestJSON_EmptyBodyIsZeroFilter(t *testing.T) {
	called := false
	h := JSON(func(_ *http.Request, got filterIn) (any, error) {
		called = true
		if got.Tag != "" || got.Limit != nil {
			t.Fatalf("expected zero filter, got %#v", got)
		}
		return []string{}, nil
	})
	code, _ := run(h, mkReq(t, http.MethodPost, strings.NewReader("")))
	if code != http.StatusOK || !called {
		t.Fatalf("expected handler to run with zero filter, got %d", code)
	}
}

func TestJSON_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"malformed", `{`, http.StatusBadRequest},
		{"unknown field", `{"tag":"go","b":2}`, http.StatusBadRequest},
		{"negative limit", `{"limit":-1}`, http.StatusBadRequest},
		{"tag with spaces", `{"tag":"go lang"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		h := JSON(func(_ *http.Request, _ filterIn) (any, error) {
			t.Fatalf("%s: handler should not be called", tc.name)
			return nil, nil
		})
		code, body := run(h, mkReq(t, http.MethodPost, strings.NewReader(tc.body)))
		if code != tc.want {
			t.Fatalf("%s: expected %d, got %d body=%s", tc.name, tc.want, code, body)
		}
	}
}

func TestJSON_HandlerError(t *testing.T) {
	h := JSON(func(_ *http.Request, _ filterIn) (any, error) {
		return nil, errors.New("nope")
	})
	code, body := run(h, mkReq(t, http.MethodPost, strings.NewReader(`{"tag":"go"}`)))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if !strings.Contains(body, `"error_code":"INTERNAL_SERVER_ERROR"`) {
		t.Fatalf("expected internal error code, got %q", body)
	}
}

func TestOptional(t *testing.T) {
	v, err := Optional(fn.Some("post"), nil)
	if err != nil || v != "post" {
		t.Fatalf("Optional(Some) = %v, %v", v, err)
	}
	v, err = Optional(fn.None[string](), nil)
	if err != nil || v != nil {
		t.Fatalf("Optional(None) = %v, %v", v, err)
	}
	boom := errors.New("boom")
	if _, err = Optional(fn.None[string](), boom); !errors.Is(err, boom) {
		t.Fatalf("Optional should pass errors through, got %v", err)
	}

	h := Call(func(*http.Request) (any, error) { return Optional(fn.None[int](), nil) })
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusOK || !strings.Contains(body, `"data":null`) {
		t.Fatalf("None should render null data, got %d %q", code, body)
	}
}
