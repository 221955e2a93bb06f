package entity

import (
	"time"

	"github.com/google/uuid"
)

// Passage is one chunk of the knowledge base with its embedding vector.
// Written by the ingestion pipeline, read by the retriever.
type Passage struct {
	Id             uuid.UUID
	Content        string
	Source         string
	ChunkIndex     int
	EmbeddingValue []float32
	CreatedAt      time.Time
}
