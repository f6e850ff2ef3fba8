package devto

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"devfeed/internal/core/memo"
	perr "devfeed/internal/platform/errors"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

const articlesBody = `[
	{"id":101,"title":"Memo caches","description":"TTL caches in Go","url":"https://dev.to/ada/memo-101","published_at":"2024-02-10T09:30:00Z","tag_list":["go","caching"]},
	{"id":102,"title":"Chi routers","description":"","url":"https://dev.to/ada/chi-102","published_at":"2024-01-05T08:00:00Z","tag_list":["go","http"]},
	{"id":103,"title":"Notes","url":"https://dev.to/ada/notes-103","published_at":"2023-12-01T08:00:00Z","tag_list":null}
]`

type fakeDevTo struct {
	calls  atomic.Int32
	apiKey atomic.Value
	tag    atomic.Value
}

func (f *fakeDevTo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	f.apiKey.Store(r.Header.Get("api-key"))
	f.tag.Store(r.URL.Query().Get("tag"))
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/articles":
		if r.URL.Query().Get("username") != "ada" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(articlesBody))
	case "/articles/101":
		_, _ = w.Write([]byte(`{"id":101,"title":"Memo caches","description":"TTL caches in Go","url":"https://dev.to/ada/memo-101","published_at":"2024-02-10T09:30:00Z","tag_list":"go, caching"}`))
	case "/articles/500":
		w.WriteHeader(http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found","status":404}`))
	}
}

func newTestSource(t *testing.T, f *fakeDevTo, key string) *Source {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewSource(NewClient(ClientOptions{BaseURL: srv.URL, APIKey: key}), memo.New(), "ada")
}

func TestListPosts_Reduces(t *testing.T) {
	f := &fakeDevTo{}
	s := newTestSource(t, f, "devto-key")

	posts, err := s.ListPosts(context.Background(), PostFilter{})
	require.NoError(t, err)
	require.Len(t, posts, 3)
	require.Equal(t, "devto-key", f.apiKey.Load())

	p := posts[0]
	require.Equal(t, "101", p.ID)
	require.Equal(t, "Memo caches", p.Title)
	require.Equal(t, "https://dev.to/ada/memo-101", p.Link)
	require.Equal(t, "2024-02-10T09:30:00Z", p.PublishDate)
	require.Equal(t, "TTL caches in Go", p.Excerpt)
	require.Equal(t, []string{"go", "caching"}, p.Tags)

	require.Equal(t, "Chi routers", posts[1].Excerpt, "excerpt falls back to title")
	require.NotNil(t, posts[2].Tags)
	require.Empty(t, posts[2].Tags)
}

func TestListPosts_NoAPIKeyHeaderWhenUnset(t *testing.T) {
	f := &fakeDevTo{}
	s := newTestSource(t, f, "")
	_, err := s.ListPosts(context.Background(), PostFilter{})
	require.NoError(t, err)
	require.Equal(t, "", f.apiKey.Load())
}

func TestListPosts_TagAndLimit(t *testing.T) {
	f := &fakeDevTo{}
	s := newTestSource(t, f, "")
	ctx := context.Background()

	posts, err := s.ListPosts(ctx, PostFilter{Tag: "http"})
	require.NoError(t, err)
	require.Equal(t, "http", f.tag.Load())
	require.Len(t, posts, 1)
	require.Equal(t, "102", posts[0].ID)

	posts, err = s.ListPosts(ctx, PostFilter{Tag: "go", Limit: intp(1)})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "101", posts[0].ID)

	posts, err = s.ListPosts(ctx, PostFilter{Tag: "go", Limit: intp(1)})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.EqualValues(t, 2, f.calls.Load())
}

func TestGetPost(t *testing.T) {
	f := &fakeDevTo{}
	s := newTestSource(t, f, "")
	ctx := context.Background()

	got, err := s.GetPost(ctx, "101")
	require.NoError(t, err)
	require.True(t, got.IsSome())
	require.Equal(t, []string{"go", "caching"}, got.UnwrapOr(BlogPost{}).Tags)

	missing, err := s.GetPost(ctx, "nonexistent-id")
	require.NoError(t, err)
	require.True(t, missing.IsNone())

	_, err = s.GetPost(ctx, "500")
	require.Error(t, err)
	require.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
	require.Equal(t, SourceName, perr.SourceOf(err))
}

func TestTagList_Shapes(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`{"tag_list":["a","b"]}`, []string{"a", "b"}},
		{`{"tag_list":"a, b,,c "}`, []string{"a", "b", "c"}},
		{`{"tag_list":null}`, nil},
		{`{}`, nil},
	}
	for _, tc := range cases {
		var d articleDoc
		require.NoError(t, sonic.Unmarshal([]byte(tc.in), &d), tc.in)
		require.Equal(t, tc.want, []string(d.TagList), tc.in)
	}
}
