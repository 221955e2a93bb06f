package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"admissions-chat-be/internal/dto"
	"admissions-chat-be/internal/pkg/logger"
	"admissions-chat-be/internal/repository"
	"admissions-chat-be/pkg/chat"
	"admissions-chat-be/pkg/chat/extract"
	"admissions-chat-be/pkg/chat/reply"
	"admissions-chat-be/pkg/events"
	"admissions-chat-be/pkg/rag"
	"admissions-chat-be/pkg/rag/answer"
	"admissions-chat-be/pkg/rag/prompt"
)

// IChatService drives the admissions conversation: the staged qualification
// script first, then free-form RAG-backed chat.
type IChatService interface {
	HandleMessage(ctx context.Context, sessionId, message string) (*dto.ChatResponse, error)
	Reset(ctx context.Context) (*dto.ResetResponse, error)
}

type chatService struct {
	sessions  repository.SessionStore
	extractor extract.Extractor
	retriever *rag.Retriever
	generator *answer.Generator
	audit     IAuditService
	logger    logger.ILogger

	completionTimeout time.Duration
	embeddingTimeout  time.Duration

	// one mutex per active session; turns within a session are serialized,
	// different sessions proceed in parallel
	locks sync.Map
}

func NewChatService(
	sessions repository.SessionStore,
	extractor extract.Extractor,
	retriever *rag.Retriever,
	generator *answer.Generator,
	audit IAuditService,
	log logger.ILogger,
	completionTimeout time.Duration,
	embeddingTimeout time.Duration,
) IChatService {
	return &chatService{
		sessions:          sessions,
		extractor:         extractor,
		retriever:         retriever,
		generator:         generator,
		audit:             audit,
		logger:            log,
		completionTimeout: completionTimeout,
		embeddingTimeout:  embeddingTimeout,
	}
}

func (s *chatService) lockSession(sessionId string) func() {
	value, _ := s.locks.LoadOrStore(sessionId, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *chatService) HandleMessage(ctx context.Context, sessionId, message string) (*dto.ChatResponse, error) {
	unlock := s.lockSession(sessionId)
	defer unlock()

	session, found := s.sessions.Get(sessionId)
	if !found {
		session = chat.NewSession(sessionId)
	}

	session.AppendUser(message)

	var response *dto.ChatResponse
	switch session.Stage {
	case chat.StageGreeting:
		response = s.handleGreeting(session)
	case chat.StageDataCollection:
		response = s.handleDataCollection(session)
	case chat.StageWaitingForData:
		response = s.handleWaitingForData(ctx, session, message)
	case chat.StageIdentification:
		response = s.handleIdentification(session, message)
	default:
		response = s.handleOpenChat(ctx, session, message)
	}

	s.sessions.Save(session)
	return response, nil
}

// handleGreeting welcomes the visitor. The triggering message is consumed
// but its content does not matter.
func (s *chatService) handleGreeting(session *chat.Session) *dto.ChatResponse {
	session.AppendAssistant(reply.Greeting)
	session.Stage = chat.StageDataCollection
	return &dto.ChatResponse{Message: reply.Greeting}
}

func (s *chatService) handleDataCollection(session *chat.Session) *dto.ChatResponse {
	session.AppendAssistant(reply.AskData)
	session.Stage = chat.StageWaitingForData
	return &dto.ChatResponse{Message: reply.AskData}
}

func (s *chatService) handleWaitingForData(ctx context.Context, session *chat.Session, message string) *dto.ChatResponse {
	extractCtx, cancel := context.WithTimeout(ctx, s.completionTimeout)
	defer cancel()

	result := s.extractor.Extract(extractCtx, message)

	if result.Intent == extract.IntentRefuse {
		session.AppendAssistant(reply.RefusalPersuasion)
		return &dto.ChatResponse{Message: reply.RefusalPersuasion}
	}

	// fill only the slots that are still empty; a validated field is never
	// overwritten by a later turn
	if result.Name != "" && !session.HasValidName() {
		session.UserData.Name = result.Name
	}
	if result.PhoneNumber != "" && !session.HasValidPhone() {
		session.UserData.PhoneNumber = result.PhoneNumber
	}

	if session.HasValidName() && session.HasValidPhone() {
		s.audit.SaveLead(ctx, session.ID, session.UserData)

		options := reply.OptionMenu()
		text := reply.OptionMenuMessage(session.UserData.Name)
		session.AppendAssistant(text, options...)
		session.Stage = chat.StageIdentification
		return &dto.ChatResponse{Message: text, Options: options}
	}

	corrective := reply.Corrective(session.UserData, chat.CountDigits(message))
	session.AppendAssistant(corrective)
	return &dto.ChatResponse{Message: corrective}
}

func (s *chatService) handleIdentification(session *chat.Session, message string) *dto.ChatResponse {
	lowered := strings.ToLower(message)

	var text string
	switch {
	case strings.Contains(lowered, "lms") || strings.Contains(lowered, "login"):
		session.UserData.UserType = chat.UserTypeExisting
		text = reply.ExistingUserResponse
	default:
		// "Explore", "Admission" and "counsellor" all lead to the new-user
		// track, as does anything unrecognized
		session.UserData.UserType = chat.UserTypeNew
		text = reply.NewUserResponse
	}

	s.audit.LogEvent(context.Background(), "USER_IDENTIFIED", map[string]interface{}{
		"session_id": session.ID,
		"user_type":  session.UserData.UserType,
	})

	session.AppendAssistant(text)
	session.Stage = chat.StageOpenChat
	return &dto.ChatResponse{Message: text}
}

func (s *chatService) handleOpenChat(ctx context.Context, session *chat.Session, message string) *dto.ChatResponse {
	// the current user turn is already in the transcript; the generator
	// appends it itself, so replay everything before it
	history := session.History()
	if len(history) > 0 {
		history = history[:len(history)-1]
	}

	searchCtx, cancelSearch := context.WithTimeout(ctx, s.embeddingTimeout)
	passages, err := s.retriever.Search(searchCtx, message, rag.DefaultTopK)
	cancelSearch()
	if err != nil {
		// retrieval trouble degrades to an answer without context
		s.logger.Warn("CHAT", "retrieval failed, answering without context", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		passages = nil
	}

	top := rag.TopContext(passages)
	confidence := rag.Confidence(top)
	systemPrompt := prompt.NewSystemBuilder(rag.JoinContext(top)).Build()

	completionCtx, cancelCompletion := context.WithTimeout(ctx, s.completionTimeout)
	defer cancelCompletion()

	text, ok := s.generator.Complete(completionCtx, systemPrompt, history, message)
	session.AppendAssistant(text)

	if ok {
		event := events.NewChatResponse(session.ID, message, text, confidence)
		s.audit.LogEvent(context.Background(), event.EventType(), event.Payload())
	}

	return &dto.ChatResponse{Message: text}
}

// Reset abandons the caller's current conversation and hands back a fresh
// session already seeded with the greeting turn.
func (s *chatService) Reset(ctx context.Context) (*dto.ResetResponse, error) {
	sessionId := uuid.NewString()

	session := chat.NewSession(sessionId)
	session.AppendAssistant(reply.Greeting)
	session.Stage = chat.StageDataCollection
	s.sessions.Save(session)

	return &dto.ResetResponse{
		SessionId: sessionId,
		Message:   reply.Greeting,
	}, nil
}
