package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"ecommerce-rag-be/internal/dto"
	"ecommerce-rag-be/internal/entity"
	"ecommerce-rag-be/internal/pkg/logger"
	"ecommerce-rag-be/internal/repository/contract"
	"ecommerce-rag-be/internal/repository/specification"
	"ecommerce-rag-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IConsumerService is the embedding worker behind corpus ingestion: it
// consumes IngestReviewMessage events, embeds the review document and
// upserts it into the vector index.
type IConsumerService interface {
	Consume(ctx context.Context) error
	Processed() int64
	Failed() int64
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	repo              contract.ReviewEmbeddingRepository
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger

	processed atomic.Int64
	failed    atomic.Int64
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	repo contract.ReviewEmbeddingRepository,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		repo:              repo,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) Processed() int64 {
	return cs.processed.Load()
}

func (cs *consumerService) Failed() int64 {
	return cs.failed.Load()
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IngestReviewMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("ingest", "failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		cs.failed.Add(1)
		msg.Ack() // malformed payloads are not retriable
		return
	}

	// Same shape the similarity search matches against at query time
	document := fmt.Sprintf("Subject: %s\nReview: %s", payload.Summary, payload.Text)

	// Re-runs skip reviews whose document text is unchanged, so the
	// embedding service is only hit for new or edited rows.
	existing, err := cs.repo.FindOne(ctx, specification.ByReviewID{ReviewID: payload.ReviewId})
	if err != nil {
		cs.log.Error("ingest", "lookup failed", map[string]interface{}{"review_id": payload.ReviewId, "error": err.Error()})
		cs.failed.Add(1)
		msg.Nack()
		return
	}
	if existing != nil && existing.Document == document {
		cs.processed.Add(1)
		msg.Ack()
		return
	}

	embeddingRes, err := cs.embeddingProvider.Generate(ctx, document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		cs.log.Error("ingest", "embedding failed", map[string]interface{}{"review_id": payload.ReviewId, "error": err.Error()})
		cs.failed.Add(1)
		msg.Nack()
		return
	}

	now := time.Now()
	reviewEmbedding := entity.ReviewEmbedding{
		Id:             uuid.New(),
		ReviewId:       payload.ReviewId,
		Document:       document,
		EmbeddingValue: embeddingRes.Embedding.Values,
		ProductId:      payload.ProductId,
		Rating:         payload.Rating,
		Summary:        payload.Summary,
		UserId:         payload.UserId,
		CreatedAt:      now,
	}

	if err := cs.repo.Upsert(ctx, &reviewEmbedding); err != nil {
		cs.log.Error("ingest", "upsert failed", map[string]interface{}{"review_id": payload.ReviewId, "error": err.Error()})
		cs.failed.Add(1)
		msg.Nack()
		return
	}

	cs.processed.Add(1)
	msg.Ack()
}
