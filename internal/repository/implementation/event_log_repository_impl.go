package implementation

import (
	"context"

	"admissions-chat-be/internal/entity"
	"admissions-chat-be/internal/mapper"
	"admissions-chat-be/internal/model"
	"admissions-chat-be/internal/repository/contract"
	"admissions-chat-be/internal/repository/specification"

	"gorm.io/gorm"
)

type EventLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EventLogMapper
}

func NewEventLogRepository(db *gorm.DB) contract.EventLogRepository {
	return &EventLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewEventLogMapper(),
	}
}

func (r *EventLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EventLogRepositoryImpl) Create(ctx context.Context, log *entity.EventLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *EventLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EventLog, error) {
	var models []*model.EventLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EventLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.EventLog{}).Count(&count).Error
	return count, err
}
