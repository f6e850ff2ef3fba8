// Package domain holds DTOs for the portfolio http and service contracts
package domain

import (
	"devfeed/internal/adapters/devto"
	"devfeed/internal/adapters/github"
	"devfeed/internal/adapters/stackexchange"
	"devfeed/internal/core/activity"
)

// Normalized records and filters are owned by the adapters

type (
	// Repository is a normalized GitHub repository
	Repository = github.Repository
	// Language is one entry of a repository language breakdown
	Language = github.Language
	// RepoFilter narrows the repository listing
	RepoFilter = github.RepoFilter

	// Question is a normalized Stack Overflow question
	Question = stackexchange.Question
	// QuestionFilter narrows the question listing
	QuestionFilter = stackexchange.QuestionFilter

	// BlogPost is a normalized dev.to article
	BlogPost = devto.BlogPost
	// PostFilter narrows the post listing
	PostFilter = devto.PostFilter

	// Activity is one entry of the merged timeline
	Activity = activity.Activity
)

// ActivityInput narrows the merged timeline
type ActivityInput struct {
	// Tags keeps activities sharing at least one tag, exact and case sensitive
	Tags []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=64" example:"go,Jupyter Notebook"`
	// After keeps activities dated strictly later, RFC3339 or YYYY-MM-DD
	After string `json:"after,omitempty" example:"2024-01-01"`
	// Limit defaults to 10, negative values are rejected
	Limit *int `json:"limit,omitempty" example:"10"`
}

// Query converts the input into an activity query
func (in ActivityInput) Query() activity.Query {
	return activity.Query{Tags: in.Tags, After: in.After, Limit: in.Limit}
}
