package mapper

import (
	"encoding/json"

	"admissions-chat-be/internal/entity"
	"admissions-chat-be/internal/model"

	"gorm.io/datatypes"
)

type EventLogMapper struct{}

func NewEventLogMapper() *EventLogMapper {
	return &EventLogMapper{}
}

func (m *EventLogMapper) ToEntity(e *model.EventLog) *entity.EventLog {
	if e == nil {
		return nil
	}

	var details map[string]interface{}
	if len(e.Details) > 0 {
		// Corrupt rows degrade to nil details rather than failing the read
		_ = json.Unmarshal(e.Details, &details)
	}

	return &entity.EventLog{
		Id:        e.Id,
		Event:     e.Event,
		Details:   details,
		CreatedAt: e.CreatedAt,
	}
}

func (m *EventLogMapper) ToModel(e *entity.EventLog) *model.EventLog {
	if e == nil {
		return nil
	}

	var details datatypes.JSON
	if e.Details != nil {
		if raw, err := json.Marshal(e.Details); err == nil {
			details = datatypes.JSON(raw)
		}
	}

	return &model.EventLog{
		Id:        e.Id,
		Event:     e.Event,
		Details:   details,
		CreatedAt: e.CreatedAt,
	}
}

func (m *EventLogMapper) ToEntities(logs []*model.EventLog) []*entity.EventLog {
	entities := make([]*entity.EventLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
