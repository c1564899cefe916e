package service

import (
	"context"
	"errors"
	"testing"

	"ecommerce-rag-be/internal/dto"
	"ecommerce-rag-be/pkg/rag"
)

type fakeRetriever struct {
	result    *rag.RetrievalResult
	err       error
	callCount int
	lastQuery rag.Query
}

func (f *fakeRetriever) Retrieve(ctx context.Context, query rag.Query) (*rag.RetrievalResult, error) {
	f.callCount++
	f.lastQuery = query
	return f.result, f.err
}

type fakeGenerator struct {
	answer    string
	err       error
	callCount int
	lastCtx   string
}

func (f *fakeGenerator) Generate(ctx context.Context, query string, contextBlock string) (string, error) {
	f.callCount++
	f.lastCtx = contextBlock
	return f.answer, f.err
}

func items(productIds ...string) []rag.RetrievedItem {
	out := make([]rag.RetrievedItem, len(productIds))
	for i, id := range productIds {
		out[i] = rag.RetrievedItem{
			ProductID:  id,
			Rating:     5,
			Summary:    "summary " + id,
			Snippet:    "snippet " + id,
			Similarity: 0.9,
		}
	}
	return out
}

func TestSearchHappyPath(t *testing.T) {
	retriever := &fakeRetriever{result: &rag.RetrievalResult{
		Query: "good coffee",
		Items: items("p1", "p2"),
	}}
	svc := NewReviewService(retriever, &fakeGenerator{}, 3, 10)

	res, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "good coffee", K: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if retriever.lastQuery.K != 2 {
		t.Errorf("k = %d, want 2", retriever.lastQuery.K)
	}
	if res.Query != "good coffee" {
		t.Errorf("query = %q", res.Query)
	}
	if len(res.Results) != 2 {
		t.Fatalf("result count = %d, want 2", len(res.Results))
	}
	if res.Results[0].ProductId != "p1" || res.Results[1].ProductId != "p2" {
		t.Errorf("rank order lost: %+v", res.Results)
	}
	if res.Results[0].Score != 5 {
		t.Errorf("score = %d, want star rating 5", res.Results[0].Score)
	}
}

func TestSearchDefaultsK(t *testing.T) {
	retriever := &fakeRetriever{result: &rag.RetrievalResult{Query: "q", Items: items("p1")}}
	svc := NewReviewService(retriever, &fakeGenerator{}, 3, 10)

	if _, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "q"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retriever.lastQuery.K != 3 {
		t.Errorf("k = %d, want default 3", retriever.lastQuery.K)
	}
}

func TestSearchValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
		k     int
	}{
		{name: "empty query", query: "", k: 3},
		{name: "whitespace query", query: "   \t", k: 3},
		{name: "negative k", query: "q", k: -1},
		{name: "k above max", query: "q", k: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retriever := &fakeRetriever{}
			svc := NewReviewService(retriever, &fakeGenerator{}, 3, 10)

			_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: tt.query, K: tt.k})

			var invalidErr *rag.InvalidQueryError
			if !errors.As(err, &invalidErr) {
				t.Fatalf("error = %v, want InvalidQueryError", err)
			}
			if retriever.callCount != 0 {
				t.Errorf("retriever called %d times on invalid input", retriever.callCount)
			}
		})
	}
}

func TestSearchRetrievalErrorPropagates(t *testing.T) {
	wrapped := errors.New("index unreachable")
	retriever := &fakeRetriever{err: &rag.RetrievalError{Err: wrapped}}
	svc := NewReviewService(retriever, &fakeGenerator{}, 3, 10)

	_, err := svc.Search(context.Background(), &dto.SearchRequest{Query: "q"})

	var retErr *rag.RetrievalError
	if !errors.As(err, &retErr) {
		t.Fatalf("error = %v, want RetrievalError", err)
	}
	if !errors.Is(err, wrapped) {
		t.Error("cause not preserved through the pipeline")
	}
}

func TestChatGroundedAnswer(t *testing.T) {
	retrieved := items("p1", "p2")
	retriever := &fakeRetriever{result: &rag.RetrievalResult{Query: "best gluten-free pasta?", Items: retrieved}}
	generator := &fakeGenerator{answer: "Reviewers like the brown rice pasta."}
	svc := NewReviewService(retriever, generator, 3, 10)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Query: "best gluten-free pasta?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if generator.callCount != 1 {
		t.Fatalf("generator calls = %d, want 1", generator.callCount)
	}
	if res.Answer != "Reviewers like the brown rice pasta." {
		t.Errorf("answer = %q", res.Answer)
	}

	// The response context is exactly the retrieved set, same order.
	if len(res.Context) != len(retrieved) {
		t.Fatalf("context count = %d, want %d", len(res.Context), len(retrieved))
	}
	for i, item := range retrieved {
		if res.Context[i].ProductId != item.ProductID {
			t.Errorf("context %d = %q, want %q", i, res.Context[i].ProductId, item.ProductID)
		}
	}
}

func TestChatEmptyRetrievalDeclines(t *testing.T) {
	retriever := &fakeRetriever{result: &rag.RetrievalResult{Query: "anything", Items: []rag.RetrievedItem{}}}
	generator := &fakeGenerator{answer: "should never appear"}
	svc := NewReviewService(retriever, generator, 3, 10)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Query: "anything"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if generator.callCount != 0 {
		t.Errorf("generator called %d times on empty retrieval", generator.callCount)
	}
	if res.Answer != rag.DeclineMessage {
		t.Errorf("answer = %q, want decline message", res.Answer)
	}
	if res.Context == nil || len(res.Context) != 0 {
		t.Errorf("context = %v, want empty slice", res.Context)
	}
}

func TestChatGenerationErrorPropagates(t *testing.T) {
	retriever := &fakeRetriever{result: &rag.RetrievalResult{Query: "q", Items: items("p1")}}
	generator := &fakeGenerator{err: &rag.GenerationError{Err: errors.New("model timeout")}}
	svc := NewReviewService(retriever, generator, 3, 10)

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{Query: "q"})

	var genErr *rag.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want GenerationError", err)
	}
}

func TestChatInvalidQuery(t *testing.T) {
	retriever := &fakeRetriever{}
	svc := NewReviewService(retriever, &fakeGenerator{}, 3, 10)

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{Query: "  "})

	var invalidErr *rag.InvalidQueryError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("error = %v, want InvalidQueryError", err)
	}
	if retriever.callCount != 0 {
		t.Errorf("retriever called on invalid input")
	}
}
