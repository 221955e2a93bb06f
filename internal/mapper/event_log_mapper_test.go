package mapper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"admissions-chat-be/internal/model"
)

func TestEventLogToEntityCorruptDetails(t *testing.T) {
	m := NewEventLogMapper()

	got := m.ToEntity(&model.EventLog{
		Id:      uuid.New(),
		Event:   "CHAT_RESPONSE",
		Details: datatypes.JSON([]byte("{not json")),
	})

	assert.Equal(t, "CHAT_RESPONSE", got.Event)
	assert.Nil(t, got.Details, "corrupt details should degrade to nil, not fail the read")
}

func TestEventLogRoundTrip(t *testing.T) {
	m := NewEventLogMapper()

	out := m.ToModel(m.ToEntity(&model.EventLog{
		Id:      uuid.New(),
		Event:   "LEAD_CAPTURED",
		Details: datatypes.JSON([]byte(`{"session_id":"s1"}`)),
	}))

	assert.Equal(t, "LEAD_CAPTURED", out.Event)
	assert.JSONEq(t, `{"session_id":"s1"}`, string(out.Details))
}
