package unitofwork

import (
	"context"

	"admissions-chat-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	LeadRepository() contract.LeadRepository
	EventLogRepository() contract.EventLogRepository
	PassageRepository() contract.PassageRepository
}
