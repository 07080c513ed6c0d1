package domain

import (
	"context"

	"github.com/timebank-lab/backend/internal/model"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

type ActivityDomain interface {
	GetUserActivity(context.Context, *model.GetUserActivityRequest) (*model.GetUserActivityResponse, error)
}

type activityDomain struct {
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
	threadRepo   repository.ThreadRepository
}

func NewActivityDomain(
	activityRepo repository.ActivityRepository,
	userRepo repository.UserRepository,
	threadRepo repository.ThreadRepository,
) *activityDomain {
	return &activityDomain{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		threadRepo:   threadRepo,
	}
}

// GetUserActivity returns every activity addressed to a user, newest first,
// with sender and thread populated.
func (d *activityDomain) GetUserActivity(
	ctx context.Context, req *model.GetUserActivityRequest,
) (*model.GetUserActivityResponse, error) {
	receiverID := req.UserID
	if receiverID == "" {
		user, err := getUserByExternalID(ctx, d.userRepo, xcontext.RequestUserID(ctx))
		if err != nil {
			return nil, err
		}
		receiverID = user.ID
	}

	activities, err := d.activityRepo.GetByReceiverID(ctx, receiverID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activities: %v", err)
		return nil, errorx.Unknown
	}

	userIDs := []string{receiverID}
	threadIDs := []string{}
	for _, a := range activities {
		userIDs = append(userIDs, a.SenderID)
		threadIDs = append(threadIDs, a.ThreadID)
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users: %v", err)
		return nil, errorx.Unknown
	}

	threads, err := d.threadRepo.GetByIDs(ctx, threadIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get threads: %v", err)
		return nil, errorx.Unknown
	}

	usersByID := userMap(users)
	threadsByID := threadMap(threads)

	clientActivities := []model.Activity{}
	for i := range activities {
		clientActivities = append(clientActivities,
			model.ConvertActivity(&activities[i], usersByID, threadsByID))
	}

	return &model.GetUserActivityResponse{Activities: clientActivities}, nil
}
