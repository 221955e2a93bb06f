package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-chat-be/pkg/chat"
)

func TestSaveAndGet(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	session := chat.NewSession("s1")
	session.Stage = chat.StageWaitingForData
	session.UserData.Name = "Rahul"
	repo.Save(session)

	got, found := repo.Get("s1")
	require.True(t, found)
	assert.Equal(t, chat.StageWaitingForData, got.Stage)
	assert.Equal(t, "Rahul", got.UserData.Name)
}

func TestGetMiss(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	got, found := repo.Get("missing")
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestDelete(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	repo.Save(chat.NewSession("s1"))
	repo.Delete("s1")

	_, found := repo.Get("s1")
	assert.False(t, found)
}

func TestEntriesExpire(t *testing.T) {
	repo := NewSessionRepository(50 * time.Millisecond)

	repo.Save(chat.NewSession("s1"))
	time.Sleep(80 * time.Millisecond)

	_, found := repo.Get("s1")
	assert.False(t, found)
}
