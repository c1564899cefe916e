package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type ReviewEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReviewId       string          `gorm:"uniqueIndex;not null"` // stable id from the source dataset, e.g. "rev_42"
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text uses 768 dimensions
	ProductId      string          `gorm:"index;not null"`
	Rating         int             `gorm:"not null"`
	Summary        string          `gorm:"type:text"`
	UserId         string          `gorm:"index"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (ReviewEmbedding) TableName() string {
	return "review_embeddings"
}
