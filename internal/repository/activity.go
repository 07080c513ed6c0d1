package repository

import (
	"context"

	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

type ActivityRepository interface {
	Create(ctx context.Context, data *entity.Activity) error
	GetByID(ctx context.Context, id string) (*entity.Activity, error)
	GetByReceiverID(ctx context.Context, receiverID string) ([]entity.Activity, error)
	GetByThreadID(ctx context.Context, threadID string) ([]entity.Activity, error)
	UpdateStatusByID(ctx context.Context, id string, status entity.ActivityStatus) error
}

type activityRepository struct{}

func NewActivityRepository() *activityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Create(ctx context.Context, data *entity.Activity) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*entity.Activity, error) {
	var record entity.Activity
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetByReceiverID returns the feed of a user, newest first.
func (r *activityRepository) GetByReceiverID(ctx context.Context, receiverID string) ([]entity.Activity, error) {
	var result []entity.Activity
	err := xcontext.DB(ctx).
		Where("receiver_id=?", receiverID).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) GetByThreadID(ctx context.Context, threadID string) ([]entity.Activity, error) {
	var result []entity.Activity
	err := xcontext.DB(ctx).
		Where("thread_id=?", threadID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) UpdateStatusByID(ctx context.Context, id string, status entity.ActivityStatus) error {
	return xcontext.DB(ctx).
		Model(&entity.Activity{}).
		Where("id=?", id).
		Update("status", status).Error
}
