// Package http provides http transport for the portfolio queries
package http

import (
	stdhttp "net/http"

	"devfeed/internal/modkit/httpkit"
	"devfeed/internal/services/api/portfolio/domain"
	svc "devfeed/internal/services/api/portfolio/service"
)

// Register mounts portfolio endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// repositories with their language breakdown
	httpkit.PostJSON(r, "/repositories", h.repositories)
	httpkit.Get(r, "/repositories/{id}", h.repository)
	httpkit.Get(r, "/repositories/{id}/languages", h.languages)

	// stack overflow questions
	httpkit.PostJSON(r, "/questions", h.questions)
	httpkit.Get(r, "/questions/{id}", h.question)

	// blog posts
	httpkit.PostJSON(r, "/posts", h.posts)
	httpkit.Get(r, "/posts/{id}", h.post)

	// merged timeline
	httpkit.PostJSON(r, "/activity", h.activity)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /portfolio/repositories Portfolio portfolioRepositories
// @Summary List repositories
// @Description Language filter is case insensitive, minStars is inclusive, limit applies last
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param payload body domain.RepoFilter false "Filter"
// @Success 200 {array} domain.Repository "ok"
// @Router /portfolio/repositories [post]
func (h *handlers) repositories(r *stdhttp.Request, in domain.RepoFilter) (any, error) {
	return h.svc.Repositories(r.Context(), in)
}

// swagger:route GET /portfolio/repositories/{id} Portfolio portfolioRepository
// @Summary Repository by id
// @Description data is null when the id is unknown
// @Tags Portfolio
// @Produce json
// @Param id path string true "Repository id"
// @Success 200 {object} domain.Repository "ok"
// @Router /portfolio/repositories/{id} [get]
func (h *handlers) repository(r *stdhttp.Request) (any, error) {
	id, err := httpkit.RequireParam(r, "id")
	if err != nil {
		return nil, err
	}
	return httpkit.Optional(h.svc.Repository(r.Context(), id))
}

// swagger:route GET /portfolio/repositories/{id}/languages Portfolio portfolioRepositoryLanguages
// @Summary Language breakdown of a repository
// @Tags Portfolio
// @Produce json
// @Param id path string true "Repository id"
// @Success 200 {array} domain.Language "ok"
// @Router /portfolio/repositories/{id}/languages [get]
func (h *handlers) languages(r *stdhttp.Request) (any, error) {
	id, err := httpkit.RequireParam(r, "id")
	if err != nil {
		return nil, err
	}
	return httpkit.Optional(h.svc.RepositoryLanguages(r.Context(), id))
}

// swagger:route POST /portfolio/questions Portfolio portfolioQuestions
// @Summary List Stack Overflow questions
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param payload body domain.QuestionFilter false "Filter"
// @Success 200 {array} domain.Question "ok"
// @Router /portfolio/questions [post]
func (h *handlers) questions(r *stdhttp.Request, in domain.QuestionFilter) (any, error) {
	return h.svc.Questions(r.Context(), in)
}

// swagger:route GET /portfolio/questions/{id} Portfolio portfolioQuestion
// @Summary Stack Overflow question by id
// @Tags Portfolio
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {object} domain.Question "ok"
// @Router /portfolio/questions/{id} [get]
func (h *handlers) question(r *stdhttp.Request) (any, error) {
	id, err := httpkit.RequireParam(r, "id")
	if err != nil {
		return nil, err
	}
	return httpkit.Optional(h.svc.Question(r.Context(), id))
}

// swagger:route POST /portfolio/posts Portfolio portfolioPosts
// @Summary List blog posts
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param payload body domain.PostFilter false "Filter"
// @Success 200 {array} domain.BlogPost "ok"
// @Router /portfolio/posts [post]
func (h *handlers) posts(r *stdhttp.Request, in domain.PostFilter) (any, error) {
	return h.svc.Posts(r.Context(), in)
}

// swagger:route GET /portfolio/posts/{id} Portfolio portfolioPost
// @Summary Blog post by id
// @Tags Portfolio
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} domain.BlogPost "ok"
// @Router /portfolio/posts/{id} [get]
func (h *handlers) post(r *stdhttp.Request) (any, error) {
	id, err := httpkit.RequireParam(r, "id")
	if err != nil {
		return nil, err
	}
	return httpkit.Optional(h.svc.Post(r.Context(), id))
}

// swagger:route POST /portfolio/activity Portfolio portfolioActivity
// @Summary Merged activity timeline
// @Description Newest first; tags match exactly, after is exclusive, limit defaults to 10
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param payload body domain.ActivityInput false "Query"
// @Success 200 {array} domain.Activity "ok"
// @Failure 422 {object} httpkit.Envelope "invalid after or limit"
// @Router /portfolio/activity [post]
func (h *handlers) activity(r *stdhttp.Request, in domain.ActivityInput) (any, error) {
	return h.svc.AllActivity(r.Context(), in)
}
