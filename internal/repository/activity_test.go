package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/testutil"
)

func Test_activityRepository(t *testing.T) {
	ctx := testutil.NewMockContext()
	activityRepo := repository.NewActivityRepository()

	now := time.Now()
	require.NoError(t, activityRepo.Create(ctx, &entity.Activity{
		Base:       entity.Base{ID: "a1", CreatedAt: now},
		Type:       entity.ActivityAssistRequest,
		ReceiverID: testutil.User1.ID,
		SenderID:   testutil.User2.ID,
		ThreadID:   "t1",
		Status:     entity.ActivityPending,
	}))
	require.NoError(t, activityRepo.Create(ctx, &entity.Activity{
		Base:       entity.Base{ID: "a2", CreatedAt: now.Add(time.Minute)},
		Type:       entity.ActivityAccept,
		ReceiverID: testutil.User1.ID,
		SenderID:   testutil.User3.ID,
		ThreadID:   "t2",
	}))
	require.NoError(t, activityRepo.Create(ctx, &entity.Activity{
		Base:       entity.Base{ID: "a3", CreatedAt: now.Add(2 * time.Minute)},
		Type:       entity.ActivityAssistApproved,
		ReceiverID: testutil.User2.ID,
		SenderID:   testutil.User1.ID,
		ThreadID:   "t1",
	}))

	feed, err := activityRepo.GetByReceiverID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	require.Equal(t, "a2", feed[0].ID)
	require.Equal(t, "a1", feed[1].ID)
	require.False(t, feed[1].Read)

	require.NoError(t, activityRepo.UpdateStatusByID(ctx, "a1", entity.ActivityApproved))
	activity, err := activityRepo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, entity.ActivityApproved, activity.Status)

	byThread, err := activityRepo.GetByThreadID(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, byThread, 2)
	require.Equal(t, "a1", byThread[0].ID)
}
