package dto

// SearchRequest is the POST /search body. K falls back to the configured
// default when omitted.
type SearchRequest struct {
	Query string `json:"query" validate:"required"`
	K     int    `json:"k" validate:"omitempty,min=1"`
}

// ReviewResultDTO is one retrieved review on the wire.
// Score carries the review's star rating (1-5) for compatibility with
// existing consumers; Similarity is the actual cosine similarity.
type ReviewResultDTO struct {
	ProductId     string  `json:"product_id"`
	Score         int     `json:"score"`
	Similarity    float64 `json:"similarity"`
	Summary       string  `json:"summary"`
	ReviewSnippet string  `json:"review_snippet"`
}

type SearchResponse struct {
	Query   string            `json:"query"`
	Results []ReviewResultDTO `json:"results"`
}

type ChatRequest struct {
	Query string `json:"query" validate:"required"`
}

type ChatResponse struct {
	Query   string            `json:"query"`
	Answer  string            `json:"answer"`
	Context []ReviewResultDTO `json:"context"`
}
