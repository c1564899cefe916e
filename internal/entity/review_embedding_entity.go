package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewEmbedding is one embedded review passage plus the metadata shown
// in search results. Document holds the full "Subject: ...\nReview: ..."
// text that was embedded.
type ReviewEmbedding struct {
	Id             uuid.UUID
	ReviewId       string
	Document       string
	EmbeddingValue []float32
	ProductId      string
	Rating         int
	Summary        string
	UserId         string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
