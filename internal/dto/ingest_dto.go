package dto

// IngestReviewMessage is the payload published per CSV row during corpus
// loading and consumed by the embedding worker.
type IngestReviewMessage struct {
	ReviewId  string `json:"review_id"`
	ProductId string `json:"product_id"`
	Rating    int    `json:"rating"`
	Summary   string `json:"summary"`
	Text      string `json:"text"`
	UserId    string `json:"user_id"`
}
