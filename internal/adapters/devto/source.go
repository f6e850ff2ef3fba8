package devto

import (
	"context"
	"slices"
	"strconv"

	"devfeed/internal/core/memo"
	perr "devfeed/internal/platform/errors"
	pstrings "devfeed/internal/platform/strings"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Source serves normalized blog posts through the memo cache
type Source struct {
	client   *Client
	cache    *memo.Cache
	username string
}

// NewSource wires a client and cache for username
func NewSource(c *Client, cache *memo.Cache, username string) *Source {
	return &Source{client: c, cache: cache, username: username}
}

// Name returns the source name
func (s *Source) Name() string { return SourceName }

// ListPosts returns the user's posts carrying the tag, then truncated
func (s *Source) ListPosts(ctx context.Context, f PostFilter) ([]BlogPost, error) {
	key := memo.Key(SourceName, "posts", f)
	return memo.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) ([]BlogPost, error) {
		docs, err := s.client.Articles(ctx, s.username, f.Tag)
		if err != nil {
			return nil, err
		}
		out := make([]BlogPost, 0, len(docs))
		for _, d := range docs {
			p := reducePost(d)
			if f.Tag != "" && !hasTag(p.Tags, f.Tag) {
				continue
			}
			out = append(out, p)
		}
		if f.Limit != nil && len(out) > *f.Limit {
			out = out[:max(*f.Limit, 0)]
		}
		return out, nil
	})
}

// GetPost fetches one post by id, None when dev.to answers 404
func (s *Source) GetPost(ctx context.Context, id string) (fn.Option[BlogPost], error) {
	key := memo.Key(SourceName, "post", map[string]string{"id": id})
	return memo.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (fn.Option[BlogPost], error) {
		doc, err := s.client.Article(ctx, id)
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return fn.None[BlogPost](), nil
		}
		if err != nil {
			return fn.None[BlogPost](), err
		}
		return fn.Some(reducePost(doc)), nil
	})
}

func reducePost(d articleDoc) BlogPost {
	excerpt := d.Description
	if excerpt == "" {
		excerpt = d.Title
	}
	tags := []string(d.TagList)
	if tags == nil {
		tags = []string{}
	}
	return BlogPost{
		ID:          strconv.FormatInt(d.ID, 10),
		Title:       d.Title,
		Link:        d.URL,
		PublishDate: d.PublishedAt,
		Excerpt:     excerpt,
		Tags:        tags,
	}
}

func hasTag(tags []string, tag string) bool {
	return slices.ContainsFunc(tags, func(t string) bool { return pstrings.EqualFold(t, tag) })
}
