package domain

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/timebank-lab/backend/internal/common"
	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/model"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/enum"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/pubsub"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ThreadDomain interface {
	GetPosts(context.Context, *model.GetPostsRequest) (*model.GetPostsResponse, error)
	GetByID(context.Context, *model.GetThreadRequest) (*model.GetThreadResponse, error)
	Create(context.Context, *model.CreateThreadRequest) (*model.CreateThreadResponse, error)
	AddComment(context.Context, *model.AddCommentRequest) (*model.AddCommentResponse, error)
	Delete(context.Context, *model.DeleteThreadRequest) (*model.DeleteThreadResponse, error)
	Accept(context.Context, *model.AcceptThreadRequest) (*model.AcceptThreadResponse, error)
}

type threadDomain struct {
	threadRepo    repository.ThreadRepository
	userRepo      repository.UserRepository
	communityRepo repository.CommunityRepository
	activityGen   *activityGenerator
}

func NewThreadDomain(
	threadRepo repository.ThreadRepository,
	userRepo repository.UserRepository,
	communityRepo repository.CommunityRepository,
	activityRepo repository.ActivityRepository,
	publisher pubsub.Publisher,
) *threadDomain {
	return &threadDomain{
		threadRepo:    threadRepo,
		userRepo:      userRepo,
		communityRepo: communityRepo,
		activityGen:   newActivityGenerator(activityRepo, publisher),
	}
}

func (d *threadDomain) GetPosts(
	ctx context.Context, req *model.GetPostsRequest,
) (*model.GetPostsResponse, error) {
	if req.PageNumber == 0 {
		req.PageNumber = 1
	}

	if req.PageNumber < 0 {
		return nil, errorx.New(errorx.BadRequest, "Page number must be positive")
	}

	pageSize, err := resolveLimit(ctx, req.PageSize, xcontext.Configs(ctx).ApiServer.DefaultLimit)
	if err != nil {
		return nil, err
	}

	offset := (req.PageNumber - 1) * pageSize
	threads, err := d.threadRepo.GetTopLevel(ctx, offset, pageSize)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get top level threads: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.threadRepo.CountTopLevel(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count top level threads: %v", err)
		return nil, errorx.Unknown
	}

	posts, err := d.expand(ctx, threads)
	if err != nil {
		return nil, err
	}

	return &model.GetPostsResponse{
		Posts:  posts,
		IsNext: total > int64(offset+len(threads)),
	}, nil
}

func (d *threadDomain) GetByID(
	ctx context.Context, req *model.GetThreadRequest,
) (*model.GetThreadResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty thread id")
	}

	thread, err := getThreadByID(ctx, d.threadRepo, req.ID)
	if err != nil {
		return nil, err
	}

	threads, err := d.expand(ctx, []entity.Thread{*thread})
	if err != nil {
		return nil, err
	}

	return &model.GetThreadResponse{Thread: threads[0]}, nil
}

// expand converts threads, populating author, community, acceptedBy and
// children with their authors. Children keep the order of the parent list.
func (d *threadDomain) expand(ctx context.Context, threads []entity.Thread) ([]model.Thread, error) {
	childIDs := []string{}
	for _, t := range threads {
		childIDs = append(childIDs, t.Children...)
	}

	children, err := d.threadRepo.GetByIDs(ctx, childIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get children threads: %v", err)
		return nil, errorx.Unknown
	}

	userIDs := []string{}
	communityIDs := []string{}
	for _, t := range append(append([]entity.Thread{}, threads...), children...) {
		userIDs = append(userIDs, t.AuthorID)
		if t.AcceptedByID.Valid {
			userIDs = append(userIDs, t.AcceptedByID.String)
		}

		if t.CommunityID.Valid {
			communityIDs = append(communityIDs, t.CommunityID.String)
		}
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users: %v", err)
		return nil, errorx.Unknown
	}

	communities, err := d.communityRepo.GetByIDs(ctx, communityIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get communities: %v", err)
		return nil, errorx.Unknown
	}

	usersByID := userMap(users)
	communitiesByID := communityMap(communities)
	childrenByID := threadMap(children)

	result := []model.Thread{}
	for i := range threads {
		childRefs := []model.Ref[model.Thread]{}
		for _, id := range threads[i].Children {
			child, ok := childrenByID[id]
			if !ok {
				childRefs = append(childRefs, model.RefID[model.Thread](id))
				continue
			}

			grandChildren := []model.Ref[model.Thread]{}
			for _, gid := range child.Children {
				grandChildren = append(grandChildren, model.RefID[model.Thread](gid))
			}

			childRefs = append(childRefs, model.Resolved(id,
				model.ConvertThread(&child, usersByID, communitiesByID, grandChildren)))
		}

		result = append(result, model.ConvertThread(&threads[i], usersByID, communitiesByID, childRefs))
	}

	return result, nil
}

func (d *threadDomain) Create(
	ctx context.Context, req *model.CreateThreadRequest,
) (*model.CreateThreadResponse, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid thread: %v", err)
	}

	approvalType, err := enum.ToEnum[entity.ApprovalType](req.ApprovalType)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid approval type")
	}

	timePeriod, err := enum.ToEnum[entity.TimePeriod](req.TimePeriod)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid time period")
	}

	author, err := getActingUser(ctx, d.userRepo, req.Author)
	if err != nil {
		return nil, err
	}

	var community *entity.Community
	if req.CommunityID != "" {
		community, err = d.communityRepo.GetByID(ctx, req.CommunityID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found community")
			}

			xcontext.Logger(ctx).Errorf("Cannot get community: %v", err)
			return nil, errorx.Unknown
		}
	}

	thread := &entity.Thread{
		Base:         entity.Base{ID: uuid.NewString()},
		AuthorID:     author.ID,
		FullName:     req.FullName,
		PhoneNo:      req.PhoneNo,
		Email:        req.Email,
		ApprovalType: approvalType,
		Description:  req.Description,
		TimePeriod:   timePeriod,
		Rewards:      req.Rewards,
		Status:       entity.ThreadPending,
	}

	if community != nil {
		thread.CommunityID = sql.NullString{Valid: true, String: community.ID}
	}

	if err := d.threadRepo.Create(ctx, thread); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create thread: %v", err)
		return nil, errorx.Unknown
	}

	err = d.userRepo.UpdateByID(ctx, author.ID, &entity.User{Threads: append(author.Threads, thread.ID)})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add thread to author: %v", err)
		return nil, errorx.Unknown
	}

	if community != nil {
		err := d.communityRepo.UpdateByID(ctx, community.ID,
			&entity.Community{Threads: append(community.Threads, thread.ID)})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot add thread to community: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.Logger(ctx).Debugf("Thread %s created, revalidate %s", thread.ID, req.Path)
	return &model.CreateThreadResponse{ID: thread.ID}, nil
}

func (d *threadDomain) AddComment(
	ctx context.Context, req *model.AddCommentRequest,
) (*model.AddCommentResponse, error) {
	if err := common.ValidateStruct(req); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid comment: %v", err)
	}

	parent, err := getThreadByID(ctx, d.threadRepo, req.ThreadID)
	if err != nil {
		return nil, err
	}

	author, err := getActingUser(ctx, d.userRepo, req.UserID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Thread{
		Base:        entity.Base{ID: uuid.NewString()},
		AuthorID:    author.ID,
		ParentID:    sql.NullString{Valid: true, String: parent.ID},
		Description: req.CommentText,
		Status:      entity.ThreadPending,
	}

	if err := d.threadRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	err = d.threadRepo.UpdateByID(ctx, parent.ID, &entity.Thread{Children: append(parent.Children, comment.ID)})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add comment to parent thread: %v", err)
		return nil, errorx.Unknown
	}

	err = d.userRepo.UpdateByID(ctx, author.ID, &entity.User{Threads: append(author.Threads, comment.ID)})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add comment to author: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.Logger(ctx).Debugf("Comment %s added to %s, revalidate %s", comment.ID, parent.ID, req.Path)
	return &model.AddCommentResponse{ID: comment.ID}, nil
}

func (d *threadDomain) Delete(
	ctx context.Context, req *model.DeleteThreadRequest,
) (*model.DeleteThreadResponse, error) {
	requester, err := getUserByExternalID(ctx, d.userRepo, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	thread, err := getThreadByID(ctx, d.threadRepo, req.ID)
	if err != nil {
		return nil, err
	}

	if thread.AuthorID != requester.ID {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can delete the thread")
	}

	if err := d.threadRepo.DeleteByID(ctx, thread.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete thread: %v", err)
		return nil, errorx.Unknown
	}

	err = d.userRepo.UpdateByID(ctx, requester.ID, &entity.User{Threads: removeID(requester.Threads, thread.ID)})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot remove thread from author: %v", err)
		return nil, errorx.Unknown
	}

	if thread.CommunityID.Valid {
		if err := d.removeFromCommunity(ctx, thread.CommunityID.String, thread.ID); err != nil {
			return nil, err
		}
	}

	if thread.ParentID.Valid {
		if err := d.removeFromParent(ctx, thread.ParentID.String, thread.ID); err != nil {
			return nil, err
		}
	}

	xcontext.Logger(ctx).Debugf("Thread %s deleted, revalidate %s", thread.ID, req.Path)
	return &model.DeleteThreadResponse{}, nil
}

func (d *threadDomain) removeFromCommunity(ctx context.Context, communityID, threadID string) error {
	community, err := d.communityRepo.GetByID(ctx, communityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Warnf("Community %s of thread %s does not exist", communityID, threadID)
			return nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get community: %v", err)
		return errorx.Unknown
	}

	err = d.communityRepo.UpdateByID(ctx, community.ID,
		&entity.Community{Threads: removeID(community.Threads, threadID)})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot remove thread from community: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *threadDomain) removeFromParent(ctx context.Context, parentID, threadID string) error {
	parent, err := d.threadRepo.GetByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Warnf("Parent %s of thread %s does not exist", parentID, threadID)
			return nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get parent thread: %v", err)
		return errorx.Unknown
	}

	err = d.threadRepo.UpdateByID(ctx, parent.ID, &entity.Thread{Children: removeID(parent.Children, threadID)})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot remove thread from parent: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *threadDomain) Accept(
	ctx context.Context, req *model.AcceptThreadRequest,
) (*model.AcceptThreadResponse, error) {
	thread, err := getThreadByID(ctx, d.threadRepo, req.ThreadID)
	if err != nil {
		return nil, err
	}

	externalID, err := authorizedExternalID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	user, err := getUserByExternalID(ctx, d.userRepo, externalID)
	if err != nil {
		return nil, err
	}

	if user.ID == thread.AuthorID {
		return nil, errorx.New(errorx.PermissionDenied, "Author cannot accept their own thread")
	}

	if thread.Status != entity.ThreadPending {
		return nil, errorx.New(errorx.InvalidState, "Thread is not pending")
	}

	err = d.threadRepo.UpdateByID(ctx, thread.ID, &entity.Thread{
		Status:       entity.ThreadAccepted,
		AcceptedByID: sql.NullString{Valid: true, String: user.ID},
		AcceptedAt:   sql.NullTime{Valid: true, Time: time.Now()},
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot accept thread: %v", err)
		return nil, errorx.Unknown
	}

	_, err = d.activityGen.generate(ctx, entity.ActivityAccept, "", user.ID, thread.AuthorID, thread.ID)
	if err != nil {
		return nil, err
	}

	err = d.userRepo.UpdateByID(ctx, user.ID,
		&entity.User{AppealsAssisted: append(user.AppealsAssisted, thread.ID)})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add thread to assisted appeals: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AcceptThreadResponse{Message: "Thread accepted successfully"}, nil
}
