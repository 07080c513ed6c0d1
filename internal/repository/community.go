package repository

import (
	"context"

	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"github.com/timebank-lab/backend/pkg/xredis"
)

type CommunityRepository interface {
	Create(ctx context.Context, data *entity.Community) error
	GetByID(ctx context.Context, id string) (*entity.Community, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Community, error)
	GetList(ctx context.Context) ([]entity.Community, error)
	UpdateByID(ctx context.Context, id string, data *entity.Community) error
}

type communityRepository struct {
	cache recordCache[entity.Community]
}

func NewCommunityRepository() *communityRepository {
	return &communityRepository{}
}

// WithCache keeps looked up communities in redis.
func (r *communityRepository) WithCache(client xredis.Client) *communityRepository {
	r.cache = newRecordCache[entity.Community](client, "community")
	return r
}

func (r *communityRepository) Create(ctx context.Context, data *entity.Community) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *communityRepository) GetByID(ctx context.Context, id string) (*entity.Community, error) {
	if cached, _ := r.cache.get(ctx, id); len(cached) > 0 {
		record := cached[id]
		return &record, nil
	}

	var record entity.Community
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	r.cache.set(ctx, map[string]entity.Community{record.ID: record})
	return &record, nil
}

func (r *communityRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Community, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cached, missing := r.cache.get(ctx, ids...)
	result := make([]entity.Community, 0, len(ids))
	for _, record := range cached {
		result = append(result, record)
	}

	if len(missing) == 0 {
		return result, nil
	}

	var records []entity.Community
	if err := xcontext.DB(ctx).Where("id IN (?)", missing).Find(&records).Error; err != nil {
		return nil, err
	}

	fresh := map[string]entity.Community{}
	for _, record := range records {
		fresh[record.ID] = record
	}
	r.cache.set(ctx, fresh)

	return append(result, records...), nil
}

func (r *communityRepository) GetList(ctx context.Context) ([]entity.Community, error) {
	var result []entity.Community
	if err := xcontext.DB(ctx).Order("created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *communityRepository) UpdateByID(ctx context.Context, id string, data *entity.Community) error {
	updateMap := map[string]any{}
	if data.Description != "" {
		updateMap["description"] = data.Description
	}

	if data.Members != nil {
		updateMap["members"] = data.Members
	}

	if data.Threads != nil {
		updateMap["threads"] = data.Threads
	}

	if len(updateMap) == 0 {
		return nil
	}

	err := xcontext.DB(ctx).Model(&entity.Community{}).Where("id=?", id).Updates(updateMap).Error
	if err != nil {
		return err
	}

	r.cache.invalidate(ctx, id)
	return nil
}
