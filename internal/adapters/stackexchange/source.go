package stackexchange

import (
	"context"
	"strconv"
	"time"

	"devfeed/internal/core/memo"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// isoMillis renders timestamps with millisecond precision in UTC
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Source serves normalized questions through the memo cache
type Source struct {
	client *Client
	cache  *memo.Cache
	userID string
}

// NewSource wires a client and cache for userID
func NewSource(c *Client, cache *memo.Cache, userID string) *Source {
	return &Source{client: c, cache: cache, userID: userID}
}

// Name returns the source name
func (s *Source) Name() string { return SourceName }

// ListQuestions returns the user's questions filtered by answered then truncated
func (s *Source) ListQuestions(ctx context.Context, f QuestionFilter) ([]Question, error) {
	key := memo.Key(SourceName, "questions", f)
	return memo.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) ([]Question, error) {
		docs, err := s.client.UserQuestions(ctx, s.userID, f.Tag)
		if err != nil {
			return nil, err
		}
		out := make([]Question, 0, len(docs))
		for _, d := range docs {
			q := reduceQuestion(d)
			if f.Answered != nil && q.Answered != *f.Answered {
				continue
			}
			out = append(out, q)
		}
		if f.Limit != nil && len(out) > *f.Limit {
			out = out[:max(*f.Limit, 0)]
		}
		return out, nil
	})
}

// GetQuestion fetches one question by id, None when the API returns no items
func (s *Source) GetQuestion(ctx context.Context, id string) (fn.Option[Question], error) {
	key := memo.Key(SourceName, "question", map[string]string{"id": id})
	return memo.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (fn.Option[Question], error) {
		docs, err := s.client.Question(ctx, id)
		if err != nil {
			return fn.None[Question](), err
		}
		if len(docs) == 0 {
			return fn.None[Question](), nil
		}
		return fn.Some(reduceQuestion(docs[0])), nil
	})
}

func reduceQuestion(d questionDoc) Question {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return Question{
		ID:          strconv.FormatInt(d.QuestionID, 10),
		Title:       d.Title,
		Link:        d.Link,
		Score:       d.Score,
		Tags:        tags,
		Answered:    d.IsAnswered,
		CreatedDate: time.Unix(d.CreationDate, 0).UTC().Format(isoMillis),
	}
}
