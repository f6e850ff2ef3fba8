// Package activity merges repository, question and blog post records into one
// date ordered timeline
package activity

// Kind names the origin of an activity
type Kind string

const (
	KindRepository    Kind = "repository"
	KindStackOverflow Kind = "stackoverflow"
	KindBlogPost      Kind = "blogpost"
)

// Prefix is prepended to the source local id so ids stay unique across sources
func (k Kind) Prefix() string {
	switch k {
	case KindRepository:
		return "github-"
	case KindStackOverflow:
		return "stackoverflow-"
	case KindBlogPost:
		return "blog-"
	default:
		return string(k) + "-"
	}
}

// Activity is the merged timeline entry, a projection of exactly one source record
type Activity struct {
	ID          string   `json:"id" example:"github-123456"`
	Type        Kind     `json:"type" enums:"repository,stackoverflow,blogpost" example:"repository"`
	Title       string   `json:"title" example:"devfeed"`
	Description string   `json:"description" example:"Portfolio aggregator"`
	URL         string   `json:"url" example:"https://github.com/ada/devfeed"`
	Date        string   `json:"date" example:"2024-05-01T10:00:00Z"`
	Tags        []string `json:"tags"`
}

// New builds an activity, prefixing localID with the kind's origin
func New(kind Kind, localID, title, description, url, date string, tags []string) Activity {
	if tags == nil {
		tags = []string{}
	}
	return Activity{
		ID:          kind.Prefix() + localID,
		Type:        kind,
		Title:       title,
		Description: description,
		URL:         url,
		Date:        date,
		Tags:        tags,
	}
}
