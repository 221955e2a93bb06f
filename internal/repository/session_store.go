package repository

import "admissions-chat-be/pkg/chat"

// SessionStore is the key-value abstraction the dialog orchestrator works
// against. Backends decide durability and eviction; the state machine never
// sees either. Lookups report a miss with false; write failures in durable
// backends are logged by the implementation, not surfaced, so a flaky store
// degrades to a fresh conversation rather than an error page.
type SessionStore interface {
	Get(sessionID string) (*chat.Session, bool)
	Save(session *chat.Session)
	Delete(sessionID string)
}
