package repository

import (
	"context"

	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"github.com/timebank-lab/backend/pkg/xredis"
	"gorm.io/gorm/clause"
)

type GetListUserFilter struct {
	ExcludeExternalID string
	Offset            int
	Limit             int
}

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	Upsert(ctx context.Context, data *entity.User) error
	UpdateByID(ctx context.Context, id string, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.User, error)
	GetList(ctx context.Context, filter GetListUserFilter) ([]entity.User, error)
}

type userRepository struct {
	cache recordCache[entity.User]
}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

// WithCache keeps looked up users in redis.
func (r *userRepository) WithCache(client xredis.Client) *userRepository {
	r.cache = newRecordCache[entity.User](client, "user")
	return r
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

// Upsert inserts data or, when a user with the same external id exists,
// overwrites its profile fields. The stored id is kept.
func (r *userRepository) Upsert(ctx context.Context, data *entity.User) error {
	err := xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username", "name", "bio", "image", "skills", "onboarded", "updated_at",
		}),
	}).Create(data).Error
	if err != nil {
		return err
	}

	r.invalidateByExternalID(ctx, data.ExternalID)
	return nil
}

func (r *userRepository) invalidateByExternalID(ctx context.Context, externalID string) {
	var record entity.User
	if err := xcontext.DB(ctx).Select("id").Where("external_id=?", externalID).Take(&record).Error; err == nil {
		r.cache.invalidate(ctx, record.ID)
	}
}

func (r *userRepository) UpdateByID(ctx context.Context, id string, data *entity.User) error {
	updateMap := map[string]any{}
	if data.Name != "" {
		updateMap["name"] = data.Name
	}

	if data.Username != "" {
		updateMap["username"] = data.Username
	}

	if data.Threads != nil {
		updateMap["threads"] = data.Threads
	}

	if data.AppealsCreated != nil {
		updateMap["appeals_created"] = data.AppealsCreated
	}

	if data.AppealsAssisted != nil {
		updateMap["appeals_assisted"] = data.AppealsAssisted
	}

	if data.Communities != nil {
		updateMap["communities"] = data.Communities
	}

	if len(updateMap) == 0 {
		return nil
	}

	err := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap).Error
	if err != nil {
		return err
	}

	r.cache.invalidate(ctx, id)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if cached, _ := r.cache.get(ctx, id); len(cached) > 0 {
		record := cached[id]
		return &record, nil
	}

	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	r.cache.set(ctx, map[string]entity.User{record.ID: record})
	return &record, nil
}

func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("external_id=?", externalID).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("username=?", username).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetByIDs returns the existing users among ids, in no particular order.
func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cached, missing := r.cache.get(ctx, ids...)
	result := make([]entity.User, 0, len(ids))
	for _, record := range cached {
		result = append(result, record)
	}

	if len(missing) == 0 {
		return result, nil
	}

	var records []entity.User
	if err := xcontext.DB(ctx).Where("id IN (?)", missing).Find(&records).Error; err != nil {
		return nil, err
	}

	fresh := map[string]entity.User{}
	for _, record := range records {
		fresh[record.ID] = record
	}
	r.cache.set(ctx, fresh)

	return append(result, records...), nil
}

func (r *userRepository) GetList(ctx context.Context, filter GetListUserFilter) ([]entity.User, error) {
	tx := xcontext.DB(ctx).Order("created_at DESC")
	if filter.ExcludeExternalID != "" {
		tx = tx.Where("external_id<>?", filter.ExcludeExternalID)
	}

	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}

	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var result []entity.User
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
