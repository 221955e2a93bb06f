package mapper

import (
	"admissions-chat-be/internal/entity"
	"admissions-chat-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}

	return &entity.Lead{
		Id:        l.Id,
		Name:      l.Name,
		Phone:     l.Phone,
		UserType:  l.UserType,
		SessionId: l.SessionId,
		CreatedAt: l.CreatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}

	return &model.Lead{
		Id:        l.Id,
		Name:      l.Name,
		Phone:     l.Phone,
		UserType:  l.UserType,
		SessionId: l.SessionId,
		CreatedAt: l.CreatedAt,
	}
}
