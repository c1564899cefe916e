package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ai       AIConfig
	Rag      RagConfig
	Ingest   IngestConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	OllamaBaseURL  string
	EmbeddingModel string
	LLMModel       string
	LLMLogFilePath string
}

// RagConfig tunes the retrieval pipeline. DefaultK is used when a request
// omits k; MaxK caps what a caller may ask for.
type RagConfig struct {
	DefaultK      int
	MaxK          int
	MaxSnippetLen int
}

type IngestConfig struct {
	CSVPath    string
	SampleSize int
	TopicName  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMModel:       getEnv("LLM_MODEL", "llama3.1:latest"),
			LLMLogFilePath: getEnv("LLM_LOG_FILE_PATH", "logs/llm_rag.log"),
		},
		Rag: RagConfig{
			DefaultK:      getEnvAsInt("RAG_DEFAULT_K", 3),
			MaxK:          getEnvAsInt("RAG_MAX_K", 10),
			MaxSnippetLen: getEnvAsInt("RAG_MAX_SNIPPET_LEN", 500),
		},
		Ingest: IngestConfig{
			CSVPath:    getEnv("INGEST_CSV_PATH", "Reviews.csv"),
			SampleSize: getEnvAsInt("INGEST_SAMPLE_SIZE", 1000),
			TopicName:  getEnv("EMBED_REVIEW_TOPIC_NAME", "EMBED_REVIEW"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
