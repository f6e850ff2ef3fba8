package service

import (
	"fmt"

	"devfeed/internal/core/activity"
	"devfeed/internal/services/api/portfolio/domain"
)

// FromRepository projects a repository, tagged with its language names and dated by its last update
func FromRepository(r domain.Repository) domain.Activity {
	tags := make([]string, len(r.Languages))
	for i, l := range r.Languages {
		tags[i] = l.Name
	}
	return activity.New(activity.KindRepository, r.ID, r.Name, r.Description, r.URL, r.LastUpdated, tags)
}

// FromQuestion projects a question, its description summarises score and answered state
func FromQuestion(q domain.Question) domain.Activity {
	desc := fmt.Sprintf("Score: %d, Answered: %t", q.Score, q.Answered)
	return activity.New(activity.KindStackOverflow, q.ID, q.Title, desc, q.Link, q.CreatedDate, q.Tags)
}

// FromPost projects a blog post, described by its excerpt
func FromPost(p domain.BlogPost) domain.Activity {
	return activity.New(activity.KindBlogPost, p.ID, p.Title, p.Excerpt, p.Link, p.PublishDate, p.Tags)
}
