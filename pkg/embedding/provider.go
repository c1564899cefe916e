package embedding

import "context"

// EmbeddingProvider turns text into a fixed-length vector.
//
// Retrieval is only meaningful when the exact same provider and model are
// used at ingestion time and at query time; wiring a different model into
// either side silently breaks similarity. Implementations must be safe for
// concurrent use.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error)
}

type EmbeddingResponseEmbedding struct {
	Values []float32 `json:"values"`
}

type EmbeddingResponse struct {
	Embedding EmbeddingResponseEmbedding `json:"embedding"`
}
