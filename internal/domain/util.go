package domain

import (
	"context"
	"errors"

	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// actingExternalID returns id, or the identity of the caller when id is empty.
// It only serves reads, writes go through authorizedExternalID.
func actingExternalID(ctx context.Context, id string) string {
	if id != "" {
		return id
	}

	return xcontext.RequestUserID(ctx)
}

// authorizedExternalID returns the external id a write acts as. An
// authenticated caller always acts as itself, the body id is only honoured
// on server side calls without a request identity.
func authorizedExternalID(ctx context.Context, id string) (string, error) {
	requestUserID := xcontext.RequestUserID(ctx)
	if requestUserID == "" {
		return id, nil
	}

	if id != "" && id != requestUserID {
		return "", errorx.New(errorx.PermissionDenied, "Cannot act on behalf of another user")
	}

	return requestUserID, nil
}

// getActingUser resolves the user a write acts as from an internal id. It
// follows the rule of authorizedExternalID.
func getActingUser(
	ctx context.Context, userRepo repository.UserRepository, id string,
) (*entity.User, error) {
	requestUserID := xcontext.RequestUserID(ctx)
	if requestUserID == "" {
		if id == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		return getUserByID(ctx, userRepo, id)
	}

	user, err := getUserByExternalID(ctx, userRepo, requestUserID)
	if err != nil {
		return nil, err
	}

	if id != "" && id != user.ID {
		return nil, errorx.New(errorx.PermissionDenied, "Cannot act on behalf of another user")
	}

	return user, nil
}

func getUserByExternalID(
	ctx context.Context, userRepo repository.UserRepository, externalID string,
) (*entity.User, error) {
	if externalID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	user, err := userRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by external id: %v", err)
		return nil, errorx.Unknown
	}

	return user, nil
}

func getUserByID(ctx context.Context, userRepo repository.UserRepository, id string) (*entity.User, error) {
	user, err := userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	return user, nil
}

func getThreadByID(ctx context.Context, threadRepo repository.ThreadRepository, id string) (*entity.Thread, error) {
	thread, err := threadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found thread")
		}

		xcontext.Logger(ctx).Errorf("Cannot get thread: %v", err)
		return nil, errorx.Unknown
	}

	return thread, nil
}

// resolveLimit applies the configured default to a zero limit and rejects
// negative or oversized ones.
func resolveLimit(ctx context.Context, limit, defaultLimit int) (int, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if limit == 0 {
		limit = defaultLimit
	}

	if limit < 0 {
		return 0, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if apiCfg.MaxLimit > 0 && limit > apiCfg.MaxLimit {
		return 0, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	return limit, nil
}

func appendUnique(list entity.Array[string], id string) (entity.Array[string], bool) {
	if slices.Contains(list, id) {
		return list, false
	}

	return append(list, id), true
}

// removeID returns a copy of list without id. The result is never nil so it
// can be written back as an empty list.
func removeID(list entity.Array[string], id string) entity.Array[string] {
	result := entity.Array[string]{}
	for _, v := range list {
		if v != id {
			result = append(result, v)
		}
	}

	return result
}

func userMap(users []entity.User) map[string]entity.User {
	m := map[string]entity.User{}
	for _, u := range users {
		m[u.ID] = u
	}
	return m
}

func threadMap(threads []entity.Thread) map[string]entity.Thread {
	m := map[string]entity.Thread{}
	for _, t := range threads {
		m[t.ID] = t
	}
	return m
}

func communityMap(communities []entity.Community) map[string]entity.Community {
	m := map[string]entity.Community{}
	for _, c := range communities {
		m[c.ID] = c
	}
	return m
}
