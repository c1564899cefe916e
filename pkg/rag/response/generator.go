package response

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ecommerce-rag-be/pkg/llm"
	"ecommerce-rag-be/pkg/rag"
)

// SystemInstruction pins the model to the supplied context. Grounding is
// enforced through this instruction alone; there is no post-hoc check of
// the completion against the context.
const SystemInstruction = "You are a helpful E-commerce assistant. Answer the user's question using ONLY the context provided below. If you don't know, say so."

// Generator produces a grounded answer from an assembled context block.
type Generator struct {
	llmProvider llm.LLMProvider
	model       string
	logger      *log.Logger
}

func NewGenerator(llmProvider llm.LLMProvider, model string, logger *log.Logger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		model:       model,
		logger:      logger,
	}
}

// Generate sends the fixed system instruction plus the context/question
// user message and returns the completion. A failed call or a blank
// completion both surface as rag.GenerationError; there is no retry and
// no fallback model.
func (g *Generator) Generate(ctx context.Context, query string, contextBlock string) (string, error) {
	messages := []llm.Message{
		{Role: "system", Content: SystemInstruction},
		{Role: "user", Content: fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextBlock, query)},
	}

	answer, err := g.llmProvider.Chat(ctx, messages, llm.WithModel(g.model))
	if err != nil {
		g.logger.Printf("[ERROR] LLM generation failed: %v", err)
		return "", &rag.GenerationError{Err: err}
	}

	if strings.TrimSpace(answer) == "" {
		g.logger.Printf("[ERROR] LLM returned an empty completion")
		return "", &rag.GenerationError{Err: fmt.Errorf("empty completion from model %s", g.model)}
	}

	return answer, nil
}
