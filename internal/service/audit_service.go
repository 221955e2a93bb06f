package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"admissions-chat-be/internal/entity"
	"admissions-chat-be/internal/pkg/logger"
	"admissions-chat-be/internal/pkg/mailer"
	"admissions-chat-be/internal/repository/unitofwork"
	"admissions-chat-be/pkg/chat"
	"admissions-chat-be/pkg/events"
	"admissions-chat-be/pkg/nats"
)

// IAuditService records leads and event logs. Every method is best-effort:
// failures are logged and absorbed so the conversation is never blocked by
// the database, the broker or the mailer.
type IAuditService interface {
	SaveLead(ctx context.Context, sessionId string, data chat.UserData)
	LogEvent(ctx context.Context, event string, details map[string]interface{})
}

type auditService struct {
	uowFactory   unitofwork.RepositoryFactory
	publisher    *nats.Publisher
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewAuditService(
	uowFactory unitofwork.RepositoryFactory,
	publisher *nats.Publisher,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IAuditService {
	return &auditService{
		uowFactory:   uowFactory,
		publisher:    publisher,
		emailService: emailService,
		logger:       log,
	}
}

func (s *auditService) SaveLead(ctx context.Context, sessionId string, data chat.UserData) {
	lead := &entity.Lead{
		Id:        uuid.New(),
		Name:      data.Name,
		Phone:     data.PhoneNumber,
		UserType:  data.UserType,
		SessionId: sessionId,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LeadRepository().Create(ctx, lead); err != nil {
		s.logger.Error("AUDIT", "failed to persist lead", map[string]interface{}{
			"sessionId": sessionId,
			"error":     err.Error(),
		})
	}

	if s.publisher != nil {
		evt := events.NewLeadCaptured(sessionId, data.Name, data.PhoneNumber)
		if err := s.publisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AUDIT", "lead event not published", map[string]interface{}{
				"sessionId": sessionId,
				"error":     err.Error(),
			})
		}
	}

	if s.emailService != nil {
		if err := s.emailService.SendLeadAlert(lead); err != nil {
			s.logger.Warn("AUDIT", "lead alert email not sent", map[string]interface{}{
				"sessionId": sessionId,
				"error":     err.Error(),
			})
		}
	}
}

func (s *auditService) LogEvent(ctx context.Context, event string, details map[string]interface{}) {
	entry := &entity.EventLog{
		Id:        uuid.New(),
		Event:     event,
		Details:   details,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.EventLogRepository().Create(ctx, entry); err != nil {
		s.logger.Error("AUDIT", "failed to persist event log", map[string]interface{}{
			"event": event,
			"error": err.Error(),
		})
	}
}
