package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"ecommerce-rag-be/internal/config"
	"ecommerce-rag-be/internal/dto"
	"ecommerce-rag-be/internal/model"
	"ecommerce-rag-be/internal/pkg/logger"
	"ecommerce-rag-be/internal/repository/implementation"
	"ecommerce-rag-be/internal/service"
	"ecommerce-rag-be/pkg/database"
	"ecommerce-rag-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"
)

// Loads the Amazon Fine Food Reviews CSV into the pgvector index. Each row
// is published onto an in-process topic and embedded by the consumer
// worker, so re-running only re-embeds changed documents.
func main() {
	cfg := config.Load()

	color.Cyan("🚀 Review corpus ingestion")

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	// Schema setup: the vector extension must exist before AutoMigrate
	// creates the vector(768) column.
	if err := gormDB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to enable pgvector extension: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.ReviewEmbedding{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	embeddingProvider := embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
	reviewRepo := implementation.NewReviewEmbeddingRepository(gormDB)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisher := service.NewPublisherService(cfg.Ingest.TopicName, pubSub)
	consumer := service.NewConsumerService(pubSub, cfg.Ingest.TopicName, reviewRepo, embeddingProvider, sysLogger)

	ctx := context.Background()
	if err := consumer.Consume(ctx); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	published, err := publishRows(ctx, cfg.Ingest.CSVPath, cfg.Ingest.SampleSize, publisher)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", cfg.Ingest.CSVPath, err)
	}
	color.Yellow("Published %d reviews to topic %s", published, cfg.Ingest.TopicName)

	// Embedding is the slow part, so allow a generous window before
	// declaring the run stuck.
	deadline := time.Now().Add(30 * time.Minute)
	for consumer.Processed()+consumer.Failed() < published {
		if time.Now().After(deadline) {
			color.Red("Timed out: %d/%d reviews processed", consumer.Processed(), published)
			os.Exit(1)
		}
		time.Sleep(500 * time.Millisecond)
	}

	if failed := consumer.Failed(); failed > 0 {
		color.Red("Done with errors: %d embedded, %d failed", consumer.Processed(), failed)
		os.Exit(1)
	}
	color.Green("✅ Done: %d reviews embedded", consumer.Processed())
}

// publishRows streams the CSV and publishes one IngestReviewMessage per
// row, capped at sampleSize. Expected columns (Kaggle fine food reviews):
// Id, ProductId, UserId, ProfileName, HelpfulnessNumerator,
// HelpfulnessDenominator, Score, Time, Summary, Text.
func publishRows(ctx context.Context, csvPath string, sampleSize int, publisher service.IPublisherService) (int64, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// Header row
	if _, err := reader.Read(); err != nil {
		return 0, err
	}

	var published int64
	for sampleSize <= 0 || published < int64(sampleSize) {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return published, err
		}
		if len(record) < 10 {
			continue
		}

		rating, err := strconv.Atoi(record[6])
		if err != nil {
			continue
		}

		msg := dto.IngestReviewMessage{
			ReviewId:  record[0],
			ProductId: record[1],
			UserId:    record[2],
			Rating:    rating,
			Summary:   record[8],
			Text:      record[9],
		}
		payload, err := json.Marshal(msg)
		if err != nil {
			return published, err
		}
		if err := publisher.Publish(ctx, payload); err != nil {
			return published, fmt.Errorf("publish review %s: %w", msg.ReviewId, err)
		}
		published++
	}

	return published, nil
}
