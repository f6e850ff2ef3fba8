package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devfeed/internal/core/memo"
	perr "devfeed/internal/platform/errors"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

// fakeUpstreams serves all three source APIs from one server
func fakeUpstreams(t *testing.T) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gh/users/ada/repos":
			_, _ = w.Write([]byte(`[
				{"id":1,"name":"devfeed","html_url":"https://github.com/ada/devfeed","stargazers_count":9,"updated_at":"2024-01-01T00:00:00Z"},
				{"id":2,"name":"dotfiles","html_url":"https://github.com/ada/dotfiles","stargazers_count":1,"updated_at":"2023-06-01T00:00:00Z"}
			]`))
		case "/gh/repos/ada/devfeed/languages":
			_, _ = w.Write([]byte(`{"Go":1}`))
		case "/gh/repos/ada/dotfiles/languages":
			_, _ = w.Write([]byte(`{"Vim Script":1}`))
		case "/so/users/99/questions":
			_, _ = w.Write([]byte(`{"items":[{"question_id":42,"title":"channels","link":"https://stackoverflow.com/q/42","score":3,"tags":["go"],"is_answered":false,"creation_date":1709251200}]}`))
		case "/dt/articles":
			_, _ = w.Write([]byte(`[{"id":7,"title":"memo","url":"https://dev.to/ada/memo","published_at":"2024-02-01T00:00:00Z","tag_list":"go, rust"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	t.Setenv("GITHUB_USERNAME", "ada")
	t.Setenv("GITHUB_BASE_URL", srv.URL+"/gh")
	t.Setenv("STACKOVERFLOW_USER_ID", "99")
	t.Setenv("STACKOVERFLOW_BASE_URL", srv.URL+"/so")
	t.Setenv("DEVTO_USERNAME", "ada")
	t.Setenv("DEVTO_BASE_URL", srv.URL+"/dt")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestActivity_JSON(t *testing.T) {
	fakeUpstreams(t)

	out, err := run(t, "activity", "--format", "json", "--limit", "3")
	require.NoError(t, err)

	var items []map[string]any
	require.NoError(t, sonic.ConfigStd.UnmarshalFromString(out, &items))
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it["id"].(string)
	}
	require.Equal(t, []string{"stackoverflow-42", "blog-7", "github-1"}, ids)
}

func TestActivity_TextAndFilters(t *testing.T) {
	fakeUpstreams(t)

	out, err := run(t, "activity", "--tags", "rust,Vim Script")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "DATE"))
	require.Contains(t, lines[1], "memo")
	require.Contains(t, lines[2], "dotfiles")

	_, err = run(t, "activity", "--after", "someday")
	require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))

	_, err = run(t, "activity", "--limit=-2")
	require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestRepos(t *testing.T) {
	fakeUpstreams(t)

	out, err := run(t, "repos", "--min-stars", "5")
	require.NoError(t, err)
	require.Contains(t, out, "devfeed")
	require.Contains(t, out, "Go:100.0%")
	require.NotContains(t, out, "dotfiles")

	_, err = run(t, "repos", "--limit=-1")
	require.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
}

func TestQuestionsAndPosts(t *testing.T) {
	fakeUpstreams(t)

	out, err := run(t, "questions", "--answered")
	require.NoError(t, err)
	require.NotContains(t, out, "channels")

	out, err = run(t, "questions", "--answered=false")
	require.NoError(t, err)
	require.Contains(t, out, "channels")

	out, err = run(t, "posts", "--tag", "rust", "--format", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"publishDate": "2024-02-01T00:00:00Z"`)

	_, err = run(t, "posts", "--tag", "go lang")
	require.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
}

func TestCacheKey(t *testing.T) {
	out, err := run(t, "cache-key", "github", "repositories", `{"minStars":5,"language":"go"}`)
	require.NoError(t, err)
	require.Equal(t, memo.Key("github", "repositories", map[string]any{"language": "go", "minStars": 5}), strings.TrimSpace(out))

	out, err = run(t, "cache-key", "blog", "posts")
	require.NoError(t, err)
	require.Equal(t, "blog:posts:{}", strings.TrimSpace(out))

	_, err = run(t, "cache-key", "blog", "posts", "{nope")
	require.Error(t, err)
}

func TestVersionAndFormat(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "devfeed-api "))

	_, err = run(t, "version", "--format", "yaml")
	require.ErrorContains(t, err, "unknown format")
}
