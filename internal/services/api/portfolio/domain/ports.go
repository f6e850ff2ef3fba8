package domain

import (
	"context"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// RepoSource is the repository adapter surface the service reads through
type RepoSource interface {
	ListRepositories(ctx context.Context, f RepoFilter) ([]Repository, error)
	GetRepository(ctx context.Context, id string) (fn.Option[Repository], error)
	LanguagesForRepo(ctx context.Context, name string) ([]Language, error)
}

// QuestionSource is the Q&A adapter surface
type QuestionSource interface {
	ListQuestions(ctx context.Context, f QuestionFilter) ([]Question, error)
	GetQuestion(ctx context.Context, id string) (fn.Option[Question], error)
}

// PostSource is the blog adapter surface
type PostSource interface {
	ListPosts(ctx context.Context, f PostFilter) ([]BlogPost, error)
	GetPost(ctx context.Context, id string) (fn.Option[BlogPost], error)
}

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Repositories(ctx context.Context, f RepoFilter) ([]Repository, error)
	Repository(ctx context.Context, id string) (fn.Option[Repository], error)
	RepositoryLanguages(ctx context.Context, id string) (fn.Option[[]Language], error)

	Questions(ctx context.Context, f QuestionFilter) ([]Question, error)
	Question(ctx context.Context, id string) (fn.Option[Question], error)

	Posts(ctx context.Context, f PostFilter) ([]BlogPost, error)
	Post(ctx context.Context, id string) (fn.Option[BlogPost], error)

	AllActivity(ctx context.Context, in ActivityInput) ([]Activity, error)
}
