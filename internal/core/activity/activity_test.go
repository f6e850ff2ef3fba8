package activity

import (
	"testing"
	"time"

	perr "devfeed/internal/platform/errors"

	"pgregory.net/rapid"
)

func intp(v int) *int { return &v }

func ids(items []Activity) []string {
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.ID
	}
	return out
}

func sameIDs(t *testing.T, got []Activity, want ...string) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("ids = %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("ids = %v, want %v", g, want)
		}
	}
}

func fixture() []Activity {
	return []Activity{
		New(KindRepository, "1", "devfeed", "aggregator", "https://github.com/ada/devfeed", "2024-01-01T00:00:00Z", []string{"Go", "Shell"}),
		New(KindStackOverflow, "42", "How do channels close?", "Score: 3, Answered: true", "https://stackoverflow.com/q/42", "2024-06-01T00:00:00Z", []string{"go", "channels"}),
		New(KindBlogPost, "7", "Writing a memo cache", "caching", "https://dev.to/ada/memo", "2023-11-15T08:00:00Z", []string{"go", "caching"}),
	}
}

func TestNew_PrefixesIDs(t *testing.T) {
	cases := map[Kind]string{
		KindRepository:    "github-9",
		KindStackOverflow: "stackoverflow-9",
		KindBlogPost:      "blog-9",
		Kind("other"):     "other-9",
	}
	for kind, want := range cases {
		a := New(kind, "9", "", "", "", "", nil)
		if a.ID != want || a.Type != kind {
			t.Fatalf("New(%s) = %+v", kind, a)
		}
		if a.Tags == nil {
			t.Fatalf("tags should never be nil")
		}
	}
}

func TestApply_SortsNewestFirst(t *testing.T) {
	got, err := Apply(fixture(), Query{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	sameIDs(t, got, "stackoverflow-42", "github-1", "blog-7")
}

func TestApply_TagsAnyMatchCaseSensitive(t *testing.T) {
	got, _ := Apply(fixture(), Query{Tags: []string{"go"}})
	sameIDs(t, got, "stackoverflow-42", "blog-7")

	got, _ = Apply(fixture(), Query{Tags: []string{"Go"}})
	sameIDs(t, got, "github-1")

	got, _ = Apply(fixture(), Query{Tags: []string{"caching", "Shell"}})
	sameIDs(t, got, "github-1", "blog-7")

	got, _ = Apply(fixture(), Query{Tags: []string{"rust"}})
	if got == nil || len(got) != 0 {
		t.Fatalf("no match should be an empty, non nil slice: %#v", got)
	}
}

func TestApply_AfterIsStrict(t *testing.T) {
	got, err := Apply(fixture(), Query{After: "2024-01-01T00:00:00Z"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	sameIDs(t, got, "stackoverflow-42")

	got, _ = Apply(fixture(), Query{After: "2023-01-01"})
	sameIDs(t, got, "stackoverflow-42", "github-1", "blog-7")
}

func TestApply_InvalidAfter(t *testing.T) {
	_, err := Apply(fixture(), Query{After: "last tuesday"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if e, _ := perr.As(err); e.Field() != "after" {
		t.Fatalf("field = %q", e.Field())
	}
}

func TestQuery_Validate(t *testing.T) {
	cases := []struct {
		q     Query
		field string
	}{
		{Query{}, ""},
		{Query{After: "2024-01-01", Limit: intp(0)}, ""},
		{Query{Limit: intp(-3)}, "limit"},
		{Query{After: "yesterday"}, "after"},
	}
	for _, tc := range cases {
		err := tc.q.Validate()
		if tc.field == "" {
			if err != nil {
				t.Fatalf("Validate(%+v) = %v", tc.q, err)
			}
			continue
		}
		e, ok := perr.As(err)
		if !ok || e.Code() != perr.ErrorCodeInvalidArgument || e.Field() != tc.field {
			t.Fatalf("Validate(%+v) = %v, want invalid %s", tc.q, err, tc.field)
		}
	}
}

func TestApply_Limit(t *testing.T) {
	got, _ := Apply(fixture(), Query{Limit: intp(2)})
	sameIDs(t, got, "stackoverflow-42", "github-1")

	got, _ = Apply(fixture(), Query{Limit: intp(0)})
	if len(got) != 0 {
		t.Fatalf("limit 0 should be empty, got %v", ids(got))
	}

	got, _ = Apply(fixture(), Query{Limit: intp(50)})
	if len(got) != 3 {
		t.Fatalf("limit above size should keep all, got %d", len(got))
	}

	if _, err := Apply(fixture(), Query{Limit: intp(-1)}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("negative limit should be invalid, got %v", err)
	}
}

func TestApply_DefaultLimit(t *testing.T) {
	items := make([]Activity, 0, 15)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 15 {
		items = append(items, New(KindBlogPost, string(rune('a'+i)), "", "", "", base.Add(time.Duration(i)*time.Hour).Format(time.RFC3339), nil))
	}
	got, _ := Apply(items, Query{})
	if len(got) != DefaultLimit {
		t.Fatalf("default limit = %d, want %d", len(got), DefaultLimit)
	}
	if got[0].ID != "blog-o" {
		t.Fatalf("newest first expected, got %s", got[0].ID)
	}
}

func TestApply_UnparsableDates(t *testing.T) {
	items := append(fixture(),
		New(KindBlogPost, "bad", "", "", "", "not a date", nil),
		New(KindBlogPost, "empty", "", "", "", "", nil),
	)

	got, _ := Apply(items, Query{})
	sameIDs(t, got, "stackoverflow-42", "github-1", "blog-7", "blog-bad", "blog-empty")

	got, _ = Apply(items, Query{After: "2000-01-01"})
	sameIDs(t, got, "stackoverflow-42", "github-1", "blog-7")
}

func TestApply_EmptyInput(t *testing.T) {
	got, err := Apply(nil, Query{Tags: []string{"go"}, After: "2024-01-01"})
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("empty input = %#v %v", got, err)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-05-01T10:00:00Z", true},
		{"2024-05-01T10:00:00.123Z", true},
		{"2024-05-01T10:00:00+02:00", true},
		{"2024-05-01T10:00:00", true},
		{"2024-05-01 10:00:00", true},
		{"2024-05-01", true},
		{"05/01/2024", false},
		{"", false},
	}
	for _, c := range cases {
		if _, ok := ParseDate(c.in); ok != c.ok {
			t.Fatalf("ParseDate(%q) ok=%v want %v", c.in, ok, c.ok)
		}
	}
}

func TestProperty_ApplyOrderedAndBounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		n := rapid.IntRange(0, 40).Draw(rt, "n")
		items := make([]Activity, n)
		for i := range items {
			offset := rapid.IntRange(0, 1000).Draw(rt, "offset")
			items[i] = New(KindRepository, "r", "", "", "", base.Add(time.Duration(offset)*time.Hour).Format(time.RFC3339), []string{"go"})
		}
		limit := rapid.IntRange(0, 50).Draw(rt, "limit")

		got, err := Apply(items, Query{Limit: &limit})
		if err != nil {
			rt.Fatalf("Apply: %v", err)
		}
		if len(got) > limit || len(got) > n {
			rt.Fatalf("len %d exceeds limit %d or input %d", len(got), limit, n)
		}
		for i := 1; i < len(got); i++ {
			prev, _ := ParseDate(got[i-1].Date)
			cur, _ := ParseDate(got[i].Date)
			if cur.After(prev) {
				rt.Fatalf("not descending at %d: %s then %s", i, got[i-1].Date, got[i].Date)
			}
		}
	})
}
