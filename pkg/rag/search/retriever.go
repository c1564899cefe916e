package search

import (
	"context"
	"fmt"
	"log"

	"ecommerce-rag-be/internal/repository/contract"
	"ecommerce-rag-be/internal/repository/memory"
	"ecommerce-rag-be/pkg/embedding"
	"ecommerce-rag-be/pkg/rag"
)

// Retriever turns a free-text query into ranked review passages. It embeds
// the query, asks the vector index for the k nearest neighbors and
// normalizes the raw rows into rag.RetrievedItem records. It holds no
// per-request state.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	repo              contract.ReviewEmbeddingRepository
	embedCache        *memory.EmbeddingCache
	maxSnippetLen     int
	logger            *log.Logger
}

func NewRetriever(
	embeddingProvider embedding.EmbeddingProvider,
	repo contract.ReviewEmbeddingRepository,
	embedCache *memory.EmbeddingCache,
	maxSnippetLen int,
	logger *log.Logger,
) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		repo:              repo,
		embedCache:        embedCache,
		maxSnippetLen:     maxSnippetLen,
		logger:            logger,
	}
}

// Retrieve runs the semantic search. The result preserves the index
// ranking (closest first) and Items is empty, never nil, on zero hits.
// Callers validate query.Text and query.K before calling.
func (r *Retriever) Retrieve(ctx context.Context, query rag.Query) (*rag.RetrievalResult, error) {
	vector, found := r.embedCache.Get(query.Text)
	if !found {
		embeddingRes, err := r.embeddingProvider.Generate(ctx, query.Text, "RETRIEVAL_QUERY")
		if err != nil {
			return nil, &rag.RetrievalError{Err: fmt.Errorf("embedding generation failed: %w", err)}
		}
		vector = embeddingRes.Embedding.Values
		r.embedCache.Save(query.Text, vector)
	}

	scoredResults, err := r.repo.SearchSimilarWithScore(ctx, vector, query.K)
	if err != nil {
		r.logger.Printf("[ERROR] Vector search failed: %v", err)
		return nil, &rag.RetrievalError{Err: err}
	}

	r.logger.Printf("[DEBUG] Raw search results: %d reviews", len(scoredResults))

	items := make([]rag.RetrievedItem, 0, len(scoredResults))
	for i, res := range scoredResults {
		if res.Embedding == nil || res.Embedding.ProductId == "" {
			return nil, &rag.RetrievalError{Err: fmt.Errorf("hit %d has no product id", i)}
		}
		items = append(items, rag.RetrievedItem{
			ProductID:  res.Embedding.ProductId,
			Rating:     res.Embedding.Rating,
			Summary:    res.Embedding.Summary,
			Snippet:    truncate(res.Embedding.Document, r.maxSnippetLen),
			UserID:     res.Embedding.UserId,
			Similarity: res.Similarity,
		})
	}

	return &rag.RetrievalResult{
		Query: query.Text,
		Items: items,
	}, nil
}

// truncate caps text at max runes, not bytes, so multi-byte review text
// is never cut mid-character.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
