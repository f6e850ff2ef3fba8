package devto

type articleDoc struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"published_at"`
	TagList     tagList `json:"tag_list"`
}

// BlogPost is the normalized dev.to article
type BlogPost struct {
	ID          string   `json:"id" example:"1800123"`
	Title       string   `json:"title" example:"Caching upstream APIs in Go"`
	Link        string   `json:"link" example:"https://dev.to/ada/caching-upstream-apis-in-go-1abc"`
	PublishDate string   `json:"publishDate" example:"2024-02-10T09:30:00Z"`
	Excerpt     string   `json:"excerpt" example:"A small memo cache in front of three APIs"`
	Tags        []string `json:"tags"`
}

// PostFilter narrows ListPosts
type PostFilter struct {
	Tag   string `json:"tag,omitempty" validate:"omitempty,topic" example:"go"`
	Limit *int   `json:"limit,omitempty" validate:"omitempty,min=0" example:"10"`
}
