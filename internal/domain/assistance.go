package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/model"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/pubsub"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AssistanceDomain interface {
	Request(context.Context, *model.RequestAssistanceRequest) (*model.RequestAssistanceResponse, error)
	Respond(context.Context, *model.RespondAssistanceRequest) (*model.RespondAssistanceResponse, error)
}

type assistanceDomain struct {
	threadRepo   repository.ThreadRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	activityGen  *activityGenerator
}

func NewAssistanceDomain(
	threadRepo repository.ThreadRepository,
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	publisher pubsub.Publisher,
) *assistanceDomain {
	return &assistanceDomain{
		threadRepo:   threadRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		activityGen:  newActivityGenerator(activityRepo, publisher),
	}
}

// Request offers the help of a user to the author of a thread. The thread is
// not modified and repeated offers are all recorded.
func (d *assistanceDomain) Request(
	ctx context.Context, req *model.RequestAssistanceRequest,
) (*model.RequestAssistanceResponse, error) {
	thread, err := getThreadByID(ctx, d.threadRepo, req.ThreadID)
	if err != nil {
		return nil, err
	}

	author, err := d.userRepo.GetByID(ctx, thread.AuthorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Thread author not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get thread author: %v", err)
		return nil, errorx.Unknown
	}

	externalID, err := authorizedExternalID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	user, err := getUserByExternalID(ctx, d.userRepo, externalID)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		xcontext.Logger(ctx).Debugf("User %s offers assistance on %s with status %s",
			user.ID, thread.ID, req.Status)
	}

	_, err = d.activityGen.generate(ctx, entity.ActivityAssistRequest, entity.ActivityPending,
		user.ID, author.ID, thread.ID)
	if err != nil {
		return nil, err
	}

	return &model.RequestAssistanceResponse{Message: "Assistance offered successfully"}, nil
}

func (d *assistanceDomain) Respond(
	ctx context.Context, req *model.RespondAssistanceRequest,
) (*model.RespondAssistanceResponse, error) {
	var activityStatus entity.ActivityStatus
	var activityType entity.ActivityType
	switch req.Action {
	case "approve":
		activityStatus, activityType = entity.ActivityApproved, entity.ActivityAssistApproved
	case "decline":
		activityStatus, activityType = entity.ActivityDeclined, entity.ActivityAssistDeclined
	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid action %s", req.Action)
	}

	activity, err := d.activityRepo.GetByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found activity")
		}

		xcontext.Logger(ctx).Errorf("Cannot get activity: %v", err)
		return nil, errorx.Unknown
	}

	thread, err := getThreadByID(ctx, d.threadRepo, req.ThreadID)
	if err != nil {
		return nil, err
	}

	target, err := getUserByID(ctx, d.userRepo, req.SenderID)
	if err != nil {
		return nil, err
	}

	currentUser, err := getActingUser(ctx, d.userRepo, req.CurrentUserID)
	if err != nil {
		return nil, err
	}

	if activity.Type != entity.ActivityAssistRequest ||
		activity.ThreadID != thread.ID || activity.SenderID != target.ID {
		return nil, errorx.New(errorx.BadRequest, "Activity is not an assistance request of sender on thread")
	}

	if activityStatus == entity.ActivityApproved && target.ID == thread.AuthorID {
		return nil, errorx.New(errorx.PermissionDenied, "Author cannot assist their own thread")
	}

	if err := d.activityRepo.UpdateStatusByID(ctx, activity.ID, activityStatus); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update activity status: %v", err)
		return nil, errorx.Unknown
	}

	if activityStatus == entity.ActivityApproved {
		update := &entity.Thread{Status: entity.ThreadAccepted}
		if assistedBy, added := appendUnique(thread.AssistedBy, target.ID); added {
			update.AssistedBy = assistedBy
		}

		if !thread.AcceptedByID.Valid {
			update.AcceptedByID = sql.NullString{Valid: true, String: target.ID}
			update.AcceptedAt = sql.NullTime{Valid: true, Time: time.Now()}
		}

		if err := d.threadRepo.UpdateByID(ctx, thread.ID, update); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot approve assistance on thread: %v", err)
			return nil, errorx.Unknown
		}
	}

	_, err = d.activityGen.generate(ctx, activityType, "", currentUser.ID, target.ID, thread.ID)
	if err != nil {
		return nil, err
	}

	return &model.RespondAssistanceResponse{
		Message: fmt.Sprintf("Assistance request %sd successfully", req.Action),
	}, nil
}
