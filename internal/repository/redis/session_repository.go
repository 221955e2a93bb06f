package redis

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"admissions-chat-be/internal/repository"
	"admissions-chat-be/pkg/chat"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "chat:session:"

// SessionRepository persists sessions in Redis with a TTL, surviving
// process restarts. Store failures are logged and degrade to a cache
// miss or dropped write; a chat turn never fails because Redis did.
type SessionRepository struct {
	client *goredis.Client
	ttl    time.Duration
}

var _ repository.SessionStore = &SessionRepository{}

func NewSessionRepository(client *goredis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepository) Get(sessionID string) (*chat.Session, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := r.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if err != goredis.Nil {
			log.Printf("[WARN] redis session get failed: %v", err)
		}
		return nil, false
	}

	var session chat.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		log.Printf("[WARN] redis session decode failed: %v", err)
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Save(session *chat.Session) {
	raw, err := json.Marshal(session)
	if err != nil {
		log.Printf("[WARN] redis session encode failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.client.Set(ctx, keyPrefix+session.ID, raw, r.ttl).Err(); err != nil {
		log.Printf("[WARN] redis session save failed: %v", err)
	}
}

func (r *SessionRepository) Delete(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		log.Printf("[WARN] redis session delete failed: %v", err)
	}
}
