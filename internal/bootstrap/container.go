package bootstrap

import (
	"log"
	"os"
	"path/filepath"

	"ecommerce-rag-be/internal/config"
	"ecommerce-rag-be/internal/controller"
	"ecommerce-rag-be/internal/pkg/logger"
	"ecommerce-rag-be/internal/repository/implementation"
	"ecommerce-rag-be/internal/repository/memory"
	"ecommerce-rag-be/internal/service"
	"ecommerce-rag-be/pkg/embedding"
	"ecommerce-rag-be/pkg/llm/ollama"
	"ecommerce-rag-be/pkg/rag/response"
	"ecommerce-rag-be/pkg/rag/search"

	"gorm.io/gorm"
)

type Container struct {
	ReviewController controller.IReviewController

	SysLogger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// The RAG path gets its own plain file logger so prompt/response traces
	// stay out of the main application log.
	llmLogger := initLLMLogger(cfg.Ai.LLMLogFilePath)

	// 2. AI Providers
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.EmbeddingModel,
	)
	llmProvider := ollama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.LLMModel)
	log.Printf("[INFO] Using Ollama at %s (embed: %s, llm: %s)",
		cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel, cfg.Ai.LLMModel)

	// 3. Storage
	reviewRepo := implementation.NewReviewEmbeddingRepository(db)
	embedCache := memory.NewEmbeddingCache()

	// 4. Pipeline Stages
	retriever := search.NewRetriever(
		embeddingProvider,
		reviewRepo,
		embedCache,
		cfg.Rag.MaxSnippetLen,
		llmLogger,
	)
	generator := response.NewGenerator(llmProvider, cfg.Ai.LLMModel, llmLogger)

	// 5. Services
	reviewService := service.NewReviewService(
		retriever,
		generator,
		cfg.Rag.DefaultK,
		cfg.Rag.MaxK,
	)

	return &Container{
		ReviewController: controller.NewReviewController(reviewService),
		SysLogger:        sysLogger,
	}
}

func initLLMLogger(logPath string) *log.Logger {
	if logPath == "" {
		logPath = filepath.Join(".", "logs", "llm_rag.log")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-RAG] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
