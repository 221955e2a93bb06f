package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "LEAD_CAPTURED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a generic implementation used when reconstructing events
// from the wire.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// LeadCaptured fires when a visitor completes the qualification script.
type LeadCaptured struct {
	SessionID  string
	Name       string
	Phone      string
	OccurredAt time.Time
}

func NewLeadCaptured(sessionID, name, phone string) LeadCaptured {
	return LeadCaptured{
		SessionID:  sessionID,
		Name:       name,
		Phone:      phone,
		OccurredAt: time.Now(),
	}
}

func (e LeadCaptured) EventType() string { return "LEAD_CAPTURED" }

func (e LeadCaptured) Payload() map[string]interface{} {
	return map[string]interface{}{
		"session_id": e.SessionID,
		"name":       e.Name,
		"phone":      e.Phone,
	}
}

func (e LeadCaptured) Timestamp() time.Time { return e.OccurredAt }

// ChatResponse fires after every open-chat exchange, carrying the retrieval
// confidence as a quality signal.
type ChatResponse struct {
	SessionID   string
	UserMessage string
	BotMessage  string
	Confidence  float64
	OccurredAt  time.Time
}

func NewChatResponse(sessionID, userMessage, botMessage string, confidence float64) ChatResponse {
	return ChatResponse{
		SessionID:   sessionID,
		UserMessage: userMessage,
		BotMessage:  botMessage,
		Confidence:  confidence,
		OccurredAt:  time.Now(),
	}
}

func (e ChatResponse) EventType() string { return "CHAT_RESPONSE" }

func (e ChatResponse) Payload() map[string]interface{} {
	return map[string]interface{}{
		"session_id":   e.SessionID,
		"user_message": e.UserMessage,
		"bot_message":  e.BotMessage,
		"confidence":   e.Confidence,
	}
}

func (e ChatResponse) Timestamp() time.Time { return e.OccurredAt }
