package memory

import (
	"time"

	"admissions-chat-be/internal/repository"
	"admissions-chat-be/pkg/chat"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps sessions in process memory with TTL eviction, so
// an abandoned conversation does not leak for the process lifetime.
type SessionRepository struct {
	cache *cache.Cache
}

var _ repository.SessionStore = &SessionRepository{}

// NewSessionRepository creates a store whose entries expire after ttl and
// are purged every ttl/6.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionRepository{
		cache: cache.New(ttl, ttl/6),
	}
}

func (r *SessionRepository) Get(sessionID string) (*chat.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*chat.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Save(session *chat.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
