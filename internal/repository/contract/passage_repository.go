package contract

import (
	"context"

	"admissions-chat-be/internal/entity"
	"admissions-chat-be/internal/repository/specification"
)

// ScoredPassage wraps a Passage with its cosine distance from the query
// vector. Lower distance means more relevant.
type ScoredPassage struct {
	Passage  *entity.Passage
	Distance float64
}

type PassageRepository interface {
	Create(ctx context.Context, passage *entity.Passage) error
	CreateBulk(ctx context.Context, passages []*entity.Passage) error
	DeleteBySource(ctx context.Context, source string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Passage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchNearest returns passages ordered ascending by cosine distance
	SearchNearest(ctx context.Context, embedding []float32, limit int) ([]*ScoredPassage, error)
}
