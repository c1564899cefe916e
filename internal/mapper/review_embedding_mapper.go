package mapper

import (
	"time"

	"ecommerce-rag-be/internal/entity"
	"ecommerce-rag-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ReviewEmbeddingMapper struct{}

func NewReviewEmbeddingMapper() *ReviewEmbeddingMapper {
	return &ReviewEmbeddingMapper{}
}

func (m *ReviewEmbeddingMapper) ToEntity(e *model.ReviewEmbedding) *entity.ReviewEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.ReviewEmbedding{
		Id:             e.Id,
		ReviewId:       e.ReviewId,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		ProductId:      e.ProductId,
		Rating:         e.Rating,
		Summary:        e.Summary,
		UserId:         e.UserId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ReviewEmbeddingMapper) ToModel(e *entity.ReviewEmbedding) *model.ReviewEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.ReviewEmbedding{
		Id:             e.Id,
		ReviewId:       e.ReviewId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		ProductId:      e.ProductId,
		Rating:         e.Rating,
		Summary:        e.Summary,
		UserId:         e.UserId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ReviewEmbeddingMapper) ToEntities(embeddings []*model.ReviewEmbedding) []*entity.ReviewEmbedding {
	entities := make([]*entity.ReviewEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
