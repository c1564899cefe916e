package service

import (
	"context"
	"fmt"
	"strings"

	"ecommerce-rag-be/internal/dto"
	"ecommerce-rag-be/pkg/rag"
	ragcontext "ecommerce-rag-be/pkg/rag/context"
)

// IReviewService is the pipeline orchestrator: the retrieval-only search
// path and the full retrieve-assemble-generate chat path.
type IReviewService interface {
	Search(ctx context.Context, request *dto.SearchRequest) (*dto.SearchResponse, error)
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
}

// Retriever is the search stage contract (implemented by pkg/rag/search).
type Retriever interface {
	Retrieve(ctx context.Context, query rag.Query) (*rag.RetrievalResult, error)
}

// Generator is the grounded generation stage contract (implemented by
// pkg/rag/response).
type Generator interface {
	Generate(ctx context.Context, query string, contextBlock string) (string, error)
}

// reviewService sequences Retriever -> ContextAssembler -> Generator.
// Per request it only moves data downstream; nothing is shared between
// requests, so one instance serves all of them.
type reviewService struct {
	retriever Retriever
	generator Generator
	defaultK  int
	maxK      int
}

func NewReviewService(retriever Retriever, generator Generator, defaultK, maxK int) IReviewService {
	return &reviewService{
		retriever: retriever,
		generator: generator,
		defaultK:  defaultK,
		maxK:      maxK,
	}
}

// validateQuery rejects bad input before any outbound call. A zero k means
// "use the default"; anything else outside [1, maxK] is a caller error.
func (s *reviewService) validateQuery(text string, k int) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, &rag.InvalidQueryError{Reason: "query text must not be empty"}
	}
	if k == 0 {
		return s.defaultK, nil
	}
	if k < 1 || k > s.maxK {
		return 0, &rag.InvalidQueryError{Reason: fmt.Sprintf("k must be between 1 and %d", s.maxK)}
	}
	return k, nil
}

func (s *reviewService) Search(ctx context.Context, request *dto.SearchRequest) (*dto.SearchResponse, error) {
	k, err := s.validateQuery(request.Query, request.K)
	if err != nil {
		return nil, err
	}

	result, err := s.retriever.Retrieve(ctx, rag.Query{Text: request.Query, K: k})
	if err != nil {
		return nil, err
	}

	return &dto.SearchResponse{
		Query:   result.Query,
		Results: toResultDTOs(result.Items),
	}, nil
}

func (s *reviewService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	_, err := s.validateQuery(request.Query, 0)
	if err != nil {
		return nil, err
	}

	result, err := s.retriever.Retrieve(ctx, rag.Query{Text: request.Query, K: s.defaultK})
	if err != nil {
		return nil, err
	}

	answer := s.answerFromResult(ctx, result)
	if answer.err != nil {
		return nil, answer.err
	}

	return &dto.ChatResponse{
		Query:   answer.value.Query,
		Answer:  answer.value.Answer,
		Context: toResultDTOs(answer.value.Context),
	}, nil
}

type answerOutcome struct {
	value rag.GroundedAnswer
	err   error
}

// answerFromResult holds the short-circuit branch: an empty retrieval is
// answered with the fixed decline message and the generator is never
// invoked. A non-empty retrieval feeds generation with exactly the
// retrieved items, no re-filtering.
func (s *reviewService) answerFromResult(ctx context.Context, result *rag.RetrievalResult) answerOutcome {
	contextBlock, ok := ragcontext.Assemble(result.Items)
	if !ok {
		return answerOutcome{value: rag.GroundedAnswer{
			Query:   result.Query,
			Answer:  rag.DeclineMessage,
			Context: []rag.RetrievedItem{},
		}}
	}

	answer, err := s.generator.Generate(ctx, result.Query, contextBlock)
	if err != nil {
		return answerOutcome{err: err}
	}

	return answerOutcome{value: rag.GroundedAnswer{
		Query:   result.Query,
		Answer:  answer,
		Context: result.Items,
	}}
}

func toResultDTOs(items []rag.RetrievedItem) []dto.ReviewResultDTO {
	results := make([]dto.ReviewResultDTO, len(items))
	for i, item := range items {
		results[i] = dto.ReviewResultDTO{
			ProductId:     item.ProductID,
			Score:         item.Rating,
			Similarity:    item.Similarity,
			Summary:       item.Summary,
			ReviewSnippet: item.Snippet,
		}
	}
	return results
}
