package repository_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/testutil"
	"gorm.io/gorm"
)

func Test_threadRepository_GetTopLevel(t *testing.T) {
	ctx := testutil.NewMockContext()
	threadRepo := repository.NewThreadRepository()

	now := time.Now()
	for i, id := range []string{"t1", "t2", "t3"} {
		require.NoError(t, threadRepo.Create(ctx, &entity.Thread{
			Base:     entity.Base{ID: id, CreatedAt: now.Add(time.Duration(i) * time.Minute)},
			AuthorID: testutil.User1.ID,
			Status:   entity.ThreadPending,
		}))
	}

	require.NoError(t, threadRepo.Create(ctx, &entity.Thread{
		Base:     entity.Base{ID: "reply", CreatedAt: now.Add(time.Hour)},
		AuthorID: testutil.User2.ID,
		ParentID: sql.NullString{Valid: true, String: "t1"},
	}))

	threads, err := threadRepo.GetTopLevel(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, threads, 2)
	require.Equal(t, "t3", threads[0].ID)
	require.Equal(t, "t2", threads[1].ID)

	threads, err = threadRepo.GetTopLevel(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	require.Equal(t, "t1", threads[0].ID)

	count, err := threadRepo.CountTopLevel(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}

func Test_threadRepository_UpdateAndDelete(t *testing.T) {
	ctx := testutil.NewMockContext()
	threadRepo := repository.NewThreadRepository()

	require.NoError(t, threadRepo.Create(ctx, &entity.Thread{
		Base:     entity.Base{ID: "t1"},
		AuthorID: testutil.User1.ID,
		Status:   entity.ThreadPending,
	}))

	acceptedAt := time.Now()
	err := threadRepo.UpdateByID(ctx, "t1", &entity.Thread{
		Status:       entity.ThreadAccepted,
		AcceptedByID: sql.NullString{Valid: true, String: testutil.User2.ID},
		AcceptedAt:   sql.NullTime{Valid: true, Time: acceptedAt},
		AssistedBy:   entity.Array[string]{testutil.User2.ID},
	})
	require.NoError(t, err)

	thread, err := threadRepo.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, entity.ThreadAccepted, thread.Status)
	require.Equal(t, testutil.User2.ID, thread.AcceptedByID.String)
	require.True(t, thread.AcceptedAt.Valid)
	require.Equal(t, entity.Array[string]{testutil.User2.ID}, thread.AssistedBy)

	require.NoError(t, threadRepo.DeleteByID(ctx, "t1"))
	_, err = threadRepo.GetByID(ctx, "t1")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	threads, err := threadRepo.GetByIDs(ctx, []string{"t1"})
	require.NoError(t, err)
	require.Empty(t, threads)
}
