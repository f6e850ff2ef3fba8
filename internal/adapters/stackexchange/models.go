package stackexchange

// envelope wraps every Stack Exchange list response
type envelope struct {
	Items   []questionDoc `json:"items"`
	HasMore bool          `json:"has_more"`
	Quota   int           `json:"quota_remaining"`
}

type questionDoc struct {
	QuestionID   int64    `json:"question_id"`
	Title        string   `json:"title"`
	Link         string   `json:"link"`
	Score        int      `json:"score"`
	Tags         []string `json:"tags"`
	IsAnswered   bool     `json:"is_answered"`
	CreationDate int64    `json:"creation_date"`
}

// Question is the normalized Stack Overflow question
type Question struct {
	ID          string   `json:"id" example:"78901234"`
	Title       string   `json:"title" example:"How do I cancel a context?"`
	Link        string   `json:"link" example:"https://stackoverflow.com/q/78901234"`
	Score       int      `json:"score" example:"5"`
	Tags        []string `json:"tags"`
	Answered    bool     `json:"answered" example:"true"`
	CreatedDate string   `json:"createdDate" example:"2024-01-02T03:04:05.000Z"`
}

// QuestionFilter narrows ListQuestions
type QuestionFilter struct {
	// Tag is sent upstream as tagged
	Tag string `json:"tag,omitempty" validate:"omitempty,topic" example:"go"`
	// Answered keeps questions whose answered flag equals it
	Answered *bool `json:"answered,omitempty" example:"true"`
	Limit    *int  `json:"limit,omitempty" validate:"omitempty,min=0" example:"10"`
}
