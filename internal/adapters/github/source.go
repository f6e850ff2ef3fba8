package github

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"time"

	"devfeed/internal/core/memo"
	"devfeed/internal/platform/logger"
	"devfeed/internal/platform/metrics"
	pstrings "devfeed/internal/platform/strings"

	"github.com/lightningnetwork/lnd/fn/v2"
	"golang.org/x/sync/errgroup"
)

// DefaultLanguagesTTL keeps language breakdowns longer than repository metadata
const DefaultLanguagesTTL = 24 * time.Hour

// languageFanout bounds concurrent language lookups during a listing
const languageFanout = 8

// Options configures the repository source
type Options struct {
	Username     string
	LanguagesTTL time.Duration
	Metrics      *metrics.Registry
}

// Source serves normalized repositories through the memo cache
type Source struct {
	client  *Client
	cache   *memo.Cache
	user    string
	langTTL time.Duration
	metrics *metrics.Registry
}

// NewSource wires a client and cache for user
func NewSource(c *Client, cache *memo.Cache, o Options) *Source {
	if o.LanguagesTTL <= 0 {
		o.LanguagesTTL = DefaultLanguagesTTL
	}
	return &Source{
		client:  c,
		cache:   cache,
		user:    o.Username,
		langTTL: o.LanguagesTTL,
		metrics: o.Metrics,
	}
}

// Name returns the source name
func (s *Source) Name() string { return SourceName }

// ListRepositories returns the user's repositories with languages, filtered then truncated
// filtered listings are derived from the cached unfiltered listing
func (s *Source) ListRepositories(ctx context.Context, f RepoFilter) ([]Repository, error) {
	if f == (RepoFilter{}) {
		return memo.Fetch(ctx, s.cache, memo.Key(SourceName, "repositories", f), 0, s.fetchAll)
	}
	return memo.Fetch(ctx, s.cache, memo.Key(SourceName, "repositories", f), 0, func(ctx context.Context) ([]Repository, error) {
		all, err := s.ListRepositories(ctx, RepoFilter{})
		if err != nil {
			return nil, err
		}
		return filterRepos(all, f), nil
	})
}

// GetRepository finds a repository by id in the full listing
// a cold cache costs a full listing, absent ids yield None
func (s *Source) GetRepository(ctx context.Context, id string) (fn.Option[Repository], error) {
	key := memo.Key(SourceName, "repository", map[string]string{"id": id})
	return memo.Fetch(ctx, s.cache, key, 0, func(ctx context.Context) (fn.Option[Repository], error) {
		all, err := s.ListRepositories(ctx, RepoFilter{})
		if err != nil {
			return fn.None[Repository](), err
		}
		for _, r := range all {
			if r.ID == id {
				return fn.Some(r), nil
			}
		}
		return fn.None[Repository](), nil
	})
}

// LanguagesForRepo returns the language breakdown of one of the user's repositories
func (s *Source) LanguagesForRepo(ctx context.Context, name string) ([]Language, error) {
	key := memo.Key(SourceName, "languages", map[string]string{"repo": name})
	return memo.Fetch(ctx, s.cache, key, s.langTTL, func(ctx context.Context) ([]Language, error) {
		bytes, err := s.client.RepoLanguages(ctx, s.user, name)
		if err != nil {
			return nil, err
		}
		return languageBreakdown(bytes), nil
	})
}

func (s *Source) fetchAll(ctx context.Context) ([]Repository, error) {
	docs, err := s.client.UserRepos(ctx, s.user)
	if err != nil {
		return nil, err
	}
	repos := make([]Repository, len(docs))
	for i, d := range docs {
		repos[i] = reduceRepo(d)
	}

	// language failures degrade to an empty breakdown and never fail the listing
	var g errgroup.Group
	g.SetLimit(languageFanout)
	for i := range repos {
		g.Go(func() error {
			langs, err := s.LanguagesForRepo(ctx, repos[i].Name)
			if err != nil && ctx.Err() != nil {
				// cancelled listing, reported below rather than as a fallback
				return nil
			}
			if err != nil {
				s.metrics.LanguageFallback()
				logger.C(ctx).Warn().
					Err(err).
					Str("source", SourceName).
					Str("repo", repos[i].Name).
					Msg("language lookup failed, using empty list")
				langs = []Language{}
			}
			repos[i].Languages = langs
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return repos, nil
}

func reduceRepo(d repoDoc) Repository {
	desc := ""
	if d.Description != nil {
		desc = *d.Description
	}
	return Repository{
		ID:          strconv.FormatInt(d.ID, 10),
		Name:        d.Name,
		Description: desc,
		URL:         d.HTMLURL,
		Stars:       d.Stargazers,
		Forks:       d.ForksCount,
		LastUpdated: d.UpdatedAt,
		Languages:   []Language{},
	}
}

// languageBreakdown converts bytes per language into percentages of the total,
// largest first; a zero total yields an empty list
func languageBreakdown(bytes map[string]int64) []Language {
	var total int64
	for _, b := range bytes {
		total += b
	}
	out := make([]Language, 0, len(bytes))
	if total <= 0 {
		return out
	}
	for name, b := range bytes {
		out = append(out, Language{Name: name, Percentage: float64(b) / float64(total) * 100})
	}
	slices.SortFunc(out, func(a, b Language) int {
		if c := cmp.Compare(bytes[b.Name], bytes[a.Name]); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

func filterRepos(all []Repository, f RepoFilter) []Repository {
	out := make([]Repository, 0, len(all))
	for _, r := range all {
		if f.Language != "" && !usesLanguage(r, f.Language) {
			continue
		}
		if f.MinStars != nil && r.Stars < *f.MinStars {
			continue
		}
		out = append(out, r)
	}
	if f.Limit != nil && len(out) > *f.Limit {
		out = out[:max(*f.Limit, 0)]
	}
	return out
}

func usesLanguage(r Repository, lang string) bool {
	for _, l := range r.Languages {
		if pstrings.EqualFold(l.Name, lang) {
			return true
		}
	}
	return false
}
