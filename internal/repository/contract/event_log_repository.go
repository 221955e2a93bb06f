package contract

import (
	"context"

	"admissions-chat-be/internal/entity"
	"admissions-chat-be/internal/repository/specification"
)

type EventLogRepository interface {
	Create(ctx context.Context, log *entity.EventLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EventLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
