package github

// repoDoc is the slice of a GitHub repository document we read
type repoDoc struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	HTMLURL     string  `json:"html_url"`
	Stargazers  int     `json:"stargazers_count"`
	ForksCount  int     `json:"forks_count"`
	UpdatedAt   string  `json:"updated_at"`
}

// Language is one entry of a repository's language breakdown
type Language struct {
	Name       string  `json:"name" example:"Go"`
	Percentage float64 `json:"percentage" example:"87.5"`
}

// Repository is the normalized repository record
type Repository struct {
	ID          string     `json:"id" example:"123456"`
	Name        string     `json:"name" example:"devfeed"`
	Description string     `json:"description" example:"Portfolio aggregator"`
	URL         string     `json:"url" example:"https://github.com/ada/devfeed"`
	Stars       int        `json:"stars" example:"42"`
	Forks       int        `json:"forks" example:"3"`
	LastUpdated string     `json:"lastUpdated" example:"2024-05-01T10:00:00Z"`
	Languages   []Language `json:"languages"`
}

// RepoFilter narrows ListRepositories, every field is optional
type RepoFilter struct {
	// Language keeps repositories using the language, compared case insensitively
	Language string `json:"language,omitempty" validate:"omitempty,max=64" example:"go"`
	// MinStars keeps repositories with at least this many stars
	MinStars *int `json:"minStars,omitempty" validate:"omitempty,min=0" example:"5"`
	// Limit truncates the result after filtering
	Limit *int `json:"limit,omitempty" validate:"omitempty,min=0" example:"10"`
}
