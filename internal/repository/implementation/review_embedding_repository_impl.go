package implementation

import (
	"context"
	"errors"

	"ecommerce-rag-be/internal/entity"
	"ecommerce-rag-be/internal/mapper"
	"ecommerce-rag-be/internal/model"
	"ecommerce-rag-be/internal/repository/contract"
	"ecommerce-rag-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewEmbeddingMapper
}

func NewReviewEmbeddingRepository(db *gorm.DB) contract.ReviewEmbeddingRepository {
	return &ReviewEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewEmbeddingMapper(),
	}
}

func (r *ReviewEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert inserts or replaces by review_id, so re-running ingestion does
// not duplicate rows.
func (r *ReviewEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.ReviewEmbedding) error {
	m := r.mapper.ToModel(embedding)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "review_id"}},
			UpdateAll: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReviewEmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReviewEmbedding, error) {
	var m model.ReviewEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReviewEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReviewEmbedding, error) {
	var models []*model.ReviewEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ReviewEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.ReviewEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore runs the nearest-neighbor query. pgvector's <=>
// operator is cosine distance, so similarity = 1 - distance. Rows come
// back ordered by similarity descending; that ordering IS the retrieval
// ranking and callers must not re-sort.
func (r *ReviewEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredReviewEmbedding, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.ReviewEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("review_embeddings").
		Select("review_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "embedding_value <=> ?",
			Vars:               []interface{}{queryVector},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredReviewEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredReviewEmbedding{
			Embedding:  r.mapper.ToEntity(&res.ReviewEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
