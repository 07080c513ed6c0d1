package repository

import (
	"context"

	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

type ThreadRepository interface {
	Create(ctx context.Context, data *entity.Thread) error
	GetByID(ctx context.Context, id string) (*entity.Thread, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Thread, error)
	GetTopLevel(ctx context.Context, offset, limit int) ([]entity.Thread, error)
	CountTopLevel(ctx context.Context) (int64, error)
	UpdateByID(ctx context.Context, id string, data *entity.Thread) error
	DeleteByID(ctx context.Context, id string) error
}

type threadRepository struct{}

func NewThreadRepository() *threadRepository {
	return &threadRepository{}
}

func (r *threadRepository) Create(ctx context.Context, data *entity.Thread) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *threadRepository) GetByID(ctx context.Context, id string) (*entity.Thread, error) {
	var record entity.Thread
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *threadRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Thread, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var result []entity.Thread
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// GetTopLevel returns the threads without parent, newest first.
func (r *threadRepository) GetTopLevel(ctx context.Context, offset, limit int) ([]entity.Thread, error) {
	var result []entity.Thread
	err := xcontext.DB(ctx).
		Where("parent_id IS NULL").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *threadRepository) CountTopLevel(ctx context.Context) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Thread{}).Where("parent_id IS NULL").Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// UpdateByID writes the lifecycle and list fields of data which are set.
func (r *threadRepository) UpdateByID(ctx context.Context, id string, data *entity.Thread) error {
	updateMap := map[string]any{}
	if data.Status != "" {
		updateMap["status"] = data.Status
	}

	if data.AcceptedByID.Valid {
		updateMap["accepted_by_id"] = data.AcceptedByID
	}

	if data.AcceptedAt.Valid {
		updateMap["accepted_at"] = data.AcceptedAt
	}

	if data.AssistedBy != nil {
		updateMap["assisted_by"] = data.AssistedBy
	}

	if data.Children != nil {
		updateMap["children"] = data.Children
	}

	if data.Likes != nil {
		updateMap["likes"] = data.Likes
	}

	if data.Reposts != nil {
		updateMap["reposts"] = data.Reposts
	}

	if len(updateMap) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Model(&entity.Thread{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *threadRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Thread{}).Error
}
