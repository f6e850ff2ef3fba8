// Package service contains the portfolio read workflows and the activity fan-out
package service

import (
	"context"

	"devfeed/internal/core/activity"
	"devfeed/internal/platform/logger"
	"devfeed/internal/services/api/portfolio/domain"

	"github.com/lightningnetwork/lnd/fn/v2"
	"golang.org/x/sync/errgroup"
)

// Service defines the portfolio service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the portfolio service over the three sources
type Svc struct {
	repos     domain.RepoSource
	questions domain.QuestionSource
	posts     domain.PostSource
}

// New constructs a portfolio service
func New(repos domain.RepoSource, questions domain.QuestionSource, posts domain.PostSource) *Svc {
	if repos == nil || questions == nil || posts == nil {
		panic("portfolio.Service requires all three sources")
	}
	return &Svc{repos: repos, questions: questions, posts: posts}
}

// Repositories lists repositories matching f
func (s *Svc) Repositories(ctx context.Context, f domain.RepoFilter) ([]domain.Repository, error) {
	return s.repos.ListRepositories(ctx, f)
}

// Repository finds one repository by id
func (s *Svc) Repository(ctx context.Context, id string) (fn.Option[domain.Repository], error) {
	return s.repos.GetRepository(ctx, id)
}

// RepositoryLanguages resolves the language breakdown of repository id
// the record's own languages are reused when populated, otherwise the cached lookup runs
func (s *Svc) RepositoryLanguages(ctx context.Context, id string) (fn.Option[[]domain.Language], error) {
	repo, err := s.repos.GetRepository(ctx, id)
	if err != nil || repo.IsNone() {
		return fn.None[[]domain.Language](), err
	}
	r := repo.UnwrapOr(domain.Repository{})
	if len(r.Languages) > 0 {
		return fn.Some(r.Languages), nil
	}
	langs, err := s.repos.LanguagesForRepo(ctx, r.Name)
	if err != nil {
		return fn.None[[]domain.Language](), err
	}
	return fn.Some(langs), nil
}

// Questions lists questions matching f
func (s *Svc) Questions(ctx context.Context, f domain.QuestionFilter) ([]domain.Question, error) {
	return s.questions.ListQuestions(ctx, f)
}

// Question finds one question by id
func (s *Svc) Question(ctx context.Context, id string) (fn.Option[domain.Question], error) {
	return s.questions.GetQuestion(ctx, id)
}

// Posts lists blog posts matching f
func (s *Svc) Posts(ctx context.Context, f domain.PostFilter) ([]domain.BlogPost, error) {
	return s.posts.ListPosts(ctx, f)
}

// Post finds one blog post by id
func (s *Svc) Post(ctx context.Context, id string) (fn.Option[domain.BlogPost], error) {
	return s.posts.GetPost(ctx, id)
}

// AllActivity merges every source into one timeline, then filters, sorts and truncates it
// sources are read unfiltered and concurrently; the first failure cancels the rest and fails the call
func (s *Svc) AllActivity(ctx context.Context, in domain.ActivityInput) ([]domain.Activity, error) {
	q := in.Query()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var (
		repos     []domain.Repository
		questions []domain.Question
		posts     []domain.BlogPost
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		repos, err = s.repos.ListRepositories(gctx, domain.RepoFilter{})
		return err
	})
	g.Go(func() (err error) {
		questions, err = s.questions.ListQuestions(gctx, domain.QuestionFilter{})
		return err
	})
	g.Go(func() (err error) {
		posts, err = s.posts.ListPosts(gctx, domain.PostFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		logger.C(ctx).Warn().Err(err).Msg("activity fan-out failed")
		return nil, err
	}

	items := make([]domain.Activity, 0, len(repos)+len(questions)+len(posts))
	for _, r := range repos {
		items = append(items, FromRepository(r))
	}
	for _, qq := range questions {
		items = append(items, FromQuestion(qq))
	}
	for _, p := range posts {
		items = append(items, FromPost(p))
	}
	return activity.Apply(items, q)
}
