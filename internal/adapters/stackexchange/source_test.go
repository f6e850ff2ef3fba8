package stackexchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"devfeed/internal/core/memo"
	perr "devfeed/internal/platform/errors"

	"github.com/stretchr/testify/require"
)

func intp(v int) *int    { return &v }
func boolp(v bool) *bool { return &v }

const questionsBody = `{"items":[
	{"question_id":11,"title":"ctx cancel","link":"https://stackoverflow.com/q/11","score":5,"tags":["go","context"],"is_answered":true,"creation_date":1704164645},
	{"question_id":12,"title":"chi routes","link":"https://stackoverflow.com/q/12","score":0,"tags":["go"],"is_answered":false,"creation_date":1704078245},
	{"question_id":13,"title":"sql nulls","link":"https://stackoverflow.com/q/13","score":2,"is_answered":true,"creation_date":1703991845}
],"has_more":false,"quota_remaining":290}`

type fakeAPI struct {
	calls atomic.Int32
	last  atomic.Value
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	f.last.Store(r.URL.Query())
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/users/99/questions":
		_, _ = w.Write([]byte(questionsBody))
	case "/questions/11":
		_, _ = w.Write([]byte(`{"items":[{"question_id":11,"title":"ctx cancel","link":"https://stackoverflow.com/q/11","score":5,"tags":["go"],"is_answered":true,"creation_date":1704164645}]}`))
	case "/questions/404":
		_, _ = w.Write([]byte(`{"items":[]}`))
	default:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_id":400,"error_message":"bad parameter"}`))
	}
}

func newTestSource(t *testing.T, f *fakeAPI) *Source {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	c := NewClient(ClientOptions{BaseURL: srv.URL, Key: "k3y"})
	return NewSource(c, memo.New(), "99")
}

func TestListQuestions_ReducesAndSendsParams(t *testing.T) {
	f := &fakeAPI{}
	s := newTestSource(t, f)

	qs, err := s.ListQuestions(context.Background(), QuestionFilter{Tag: "go"})
	require.NoError(t, err)
	require.Len(t, qs, 3)

	q := qs[0]
	require.Equal(t, "11", q.ID)
	require.Equal(t, "ctx cancel", q.Title)
	require.Equal(t, "https://stackoverflow.com/q/11", q.Link)
	require.Equal(t, 5, q.Score)
	require.Equal(t, []string{"go", "context"}, q.Tags)
	require.True(t, q.Answered)
	require.Equal(t, "2024-01-02T03:04:05.000Z", q.CreatedDate)
	require.NotNil(t, qs[2].Tags)

	params := f.last.Load().(url.Values)
	require.Equal(t, "stackoverflow", params.Get("site"))
	require.Equal(t, "k3y", params.Get("key"))
	require.Equal(t, questionFields, params.Get("filter"))
	require.Equal(t, "go", params.Get("tagged"))
}

func TestListQuestions_AnsweredThenLimit(t *testing.T) {
	f := &fakeAPI{}
	s := newTestSource(t, f)
	ctx := context.Background()

	qs, err := s.ListQuestions(ctx, QuestionFilter{Answered: boolp(false)})
	require.NoError(t, err)
	require.Len(t, qs, 1)
	require.Equal(t, "12", qs[0].ID)

	qs, err = s.ListQuestions(ctx, QuestionFilter{Answered: boolp(true), Limit: intp(1)})
	require.NoError(t, err)
	require.Len(t, qs, 1)
	require.Equal(t, "11", qs[0].ID)

	qs, err = s.ListQuestions(ctx, QuestionFilter{Limit: intp(0)})
	require.NoError(t, err)
	require.Empty(t, qs)
}

func TestListQuestions_CachedPerFilter(t *testing.T) {
	f := &fakeAPI{}
	s := newTestSource(t, f)
	ctx := context.Background()

	for range 3 {
		_, err := s.ListQuestions(ctx, QuestionFilter{Tag: "go"})
		require.NoError(t, err)
	}
	require.EqualValues(t, 1, f.calls.Load())

	_, err := s.ListQuestions(ctx, QuestionFilter{Tag: "sql"})
	require.NoError(t, err)
	require.EqualValues(t, 2, f.calls.Load())
}

func TestGetQuestion(t *testing.T) {
	f := &fakeAPI{}
	s := newTestSource(t, f)
	ctx := context.Background()

	got, err := s.GetQuestion(ctx, "11")
	require.NoError(t, err)
	require.True(t, got.IsSome())
	require.Equal(t, "ctx cancel", got.UnwrapOr(Question{}).Title)

	missing, err := s.GetQuestion(ctx, "404")
	require.NoError(t, err)
	require.True(t, missing.IsNone())

	_, err = s.GetQuestion(ctx, "bogus")
	require.Error(t, err)
	require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
	require.Equal(t, SourceName, perr.SourceOf(err))
}
