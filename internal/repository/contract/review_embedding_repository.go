package contract

import (
	"context"

	"ecommerce-rag-be/internal/entity"
	"ecommerce-rag-be/internal/repository/specification"
)

// ScoredReviewEmbedding pairs a stored review with its cosine similarity
// to the query vector (1 = identical direction).
type ScoredReviewEmbedding struct {
	Embedding  *entity.ReviewEmbedding
	Similarity float64
}

// ReviewEmbeddingRepository is the persistence contract for the review
// corpus. The backing *gorm.DB pools connections and is shared by all
// requests; implementations must not keep per-call state.
type ReviewEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *entity.ReviewEmbedding) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReviewEmbedding, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReviewEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilarWithScore returns up to limit rows ordered by descending
	// cosine similarity to the query vector.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*ScoredReviewEmbedding, error)
}
