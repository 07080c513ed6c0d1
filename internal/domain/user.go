package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/timebank-lab/backend/internal/common"
	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/model"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	defaultSuggestedUsersLimit = 5
	defaultUserProfilesLimit   = 10
)

type UserDomain interface {
	Get(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	Update(context.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	GetSuggested(context.Context, *model.GetSuggestedUsersRequest) (*model.GetSuggestedUsersResponse, error)
	GetProfiles(context.Context, *model.GetUserProfilesRequest) (*model.GetUserProfilesResponse, error)
}

type userDomain struct {
	userRepo      repository.UserRepository
	threadRepo    repository.ThreadRepository
	communityRepo repository.CommunityRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	threadRepo repository.ThreadRepository,
	communityRepo repository.CommunityRepository,
) *userDomain {
	return &userDomain{
		userRepo:      userRepo,
		threadRepo:    threadRepo,
		communityRepo: communityRepo,
	}
}

func (d *userDomain) Get(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error) {
	user, err := getUserByExternalID(ctx, d.userRepo, actingExternalID(ctx, req.UserID))
	if err != nil {
		return nil, err
	}

	communities, err := d.communityRepo.GetByIDs(ctx, user.Communities)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get communities of user: %v", err)
		return nil, errorx.Unknown
	}

	assisted, err := d.threadRepo.GetByIDs(ctx, user.AppealsAssisted)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get assisted appeals of user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUserResponse{
		User: model.ConvertUser(user, threadMap(assisted), communityMap(communities)),
	}, nil
}

// Update creates the profile of a user on onboarding or overwrites it later.
func (d *userDomain) Update(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid user: %v", err)
	}

	externalID, err := authorizedExternalID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if externalID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	username := strings.ToLower(req.Username)
	existing, err := d.userRepo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by username: %v", err)
		return nil, errorx.Unknown
	}

	if err == nil && existing.ExternalID != externalID {
		return nil, errorx.New(errorx.AlreadyExists, "Username %s is already taken", username)
	}

	err = d.userRepo.Upsert(ctx, &entity.User{
		Base:       entity.Base{ID: uuid.NewString()},
		ExternalID: externalID,
		Username:   username,
		Name:       req.Name,
		Bio:        req.Bio,
		Image:      req.Image,
		Skills:     entity.Array[string](req.Skills),
		Onboarded:  true,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert user: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.Logger(ctx).Debugf("User %s updated, revalidate %s", externalID, req.Path)
	return &model.UpdateUserResponse{}, nil
}

func (d *userDomain) GetSuggested(
	ctx context.Context, req *model.GetSuggestedUsersRequest,
) (*model.GetSuggestedUsersResponse, error) {
	limit, err := resolveLimit(ctx, req.Limit, defaultSuggestedUsersLimit)
	if err != nil {
		return nil, err
	}

	users, err := d.userRepo.GetList(ctx, repository.GetListUserFilter{
		ExcludeExternalID: actingExternalID(ctx, req.UserID),
		Limit:             limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get suggested users: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.UserSummary{}
	for i := range users {
		result = append(result, model.ConvertUserSummary(&users[i]))
	}

	return &model.GetSuggestedUsersResponse{Users: result}, nil
}

func (d *userDomain) GetProfiles(
	ctx context.Context, req *model.GetUserProfilesRequest,
) (*model.GetUserProfilesResponse, error) {
	limit, err := resolveLimit(ctx, req.Limit, defaultUserProfilesLimit)
	if err != nil {
		return nil, err
	}

	if req.Skip < 0 {
		return nil, errorx.New(errorx.BadRequest, "Skip must be positive")
	}

	users, err := d.userRepo.GetList(ctx, repository.GetListUserFilter{
		Offset: req.Skip,
		Limit:  limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user profiles: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.UserProfile{}
	for i := range users {
		result = append(result, model.ConvertUserProfile(&users[i]))
	}

	return &model.GetUserProfilesResponse{Users: result}, nil
}
