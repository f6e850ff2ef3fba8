package activity

import (
	"slices"
	"sort"
	"time"

	perr "devfeed/internal/platform/errors"
)

// DefaultLimit caps the timeline when the caller does not pass a limit
const DefaultLimit = 10

// Query narrows a timeline, every field is optional
type Query struct {
	// Tags keeps activities sharing at least one tag, matched exactly and case sensitively
	Tags []string
	// After keeps activities dated strictly later than this timestamp
	After string
	// Limit truncates the result, nil means DefaultLimit
	Limit *int
}

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses the timestamp shapes the sources emit
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Validate reports an invalid Limit or After without touching any items
func (q Query) Validate() error {
	_, _, _, err := q.parse()
	return err
}

func (q Query) parse() (limit int, after time.Time, hasAfter bool, err error) {
	limit = DefaultLimit
	if q.Limit != nil {
		limit = *q.Limit
	}
	if limit < 0 {
		return 0, after, false, perr.WithField(perr.InvalidArgf("limit must be >= 0, got %d", limit), "limit")
	}
	if q.After == "" {
		return limit, after, false, nil
	}
	t, ok := ParseDate(q.After)
	if !ok {
		return 0, after, false, perr.WithField(perr.InvalidArgf("after is not a valid timestamp: %q", q.After), "after")
	}
	return limit, t, true, nil
}

// Apply filters by tags then by After, sorts newest first and truncates
// an unparsable After fails the call; activities with unparsable dates are
// dropped when After is set and otherwise sort after every dated activity
func Apply(items []Activity, q Query) ([]Activity, error) {
	limit, after, hasAfter, err := q.parse()
	if err != nil {
		return nil, err
	}

	type dated struct {
		a  Activity
		t  time.Time
		ok bool
	}
	kept := make([]dated, 0, len(items))
	for _, a := range items {
		if !matchesTags(a.Tags, q.Tags) {
			continue
		}
		t, ok := ParseDate(a.Date)
		if hasAfter && (!ok || !t.After(after)) {
			continue
		}
		kept = append(kept, dated{a: a, t: t, ok: ok})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].ok != kept[j].ok {
			return kept[i].ok
		}
		return kept[i].t.After(kept[j].t)
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	out := make([]Activity, len(kept))
	for i, d := range kept {
		out[i] = d.a
	}
	return out, nil
}

func matchesTags(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, t := range have {
		if slices.Contains(want, t) {
			return true
		}
	}
	return false
}
