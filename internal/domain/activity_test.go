package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/model"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/testutil"
)

func Test_activityDomain_GetUserActivity(t *testing.T) {
	ctx := testutil.NewMockContextWithUserID(nil, testutil.User1.ExternalID)
	testutil.CreateFixtureDb(ctx)
	s := newDomainSuite()

	s.createThread(t, ctx, "X", testutil.User1.ID, time.Now())

	now := time.Now()
	activities := []entity.Activity{
		{
			Base:       entity.Base{ID: "a1", CreatedAt: now},
			Type:       entity.ActivityAssistRequest,
			SenderID:   testutil.User2.ID,
			ReceiverID: testutil.User1.ID,
			ThreadID:   "X",
			Status:     entity.ActivityPending,
		},
		{
			Base:       entity.Base{ID: "a2", CreatedAt: now.Add(time.Minute)},
			Type:       entity.ActivityAccept,
			SenderID:   testutil.User3.ID,
			ReceiverID: testutil.User1.ID,
			ThreadID:   "X",
		},
		{
			Base:       entity.Base{ID: "a3", CreatedAt: now.Add(2 * time.Minute)},
			Type:       entity.ActivityAssistApproved,
			SenderID:   testutil.User1.ID,
			ReceiverID: testutil.User2.ID,
			ThreadID:   "X",
		},
	}
	for i := range activities {
		require.NoError(t, s.activityRepo.Create(ctx, &activities[i]))
	}

	resp, err := s.activityDomain.GetUserActivity(ctx, &model.GetUserActivityRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 2)

	latest := resp.Activities[0]
	require.Equal(t, "a2", latest.ID)
	require.Equal(t, string(entity.ActivityAccept), latest.Type)
	require.Equal(t, testutil.User3.Name, latest.Sender.Value.Name)
	require.Equal(t, testutil.User1.ID, latest.Receiver.ID)
	require.True(t, latest.Thread.IsResolved())
	require.Equal(t, "X", latest.Thread.Value.ID)

	require.Equal(t, "a1", resp.Activities[1].ID)
	require.Equal(t, string(entity.ActivityPending), resp.Activities[1].Status)

	resp, err = s.activityDomain.GetUserActivity(ctx, &model.GetUserActivityRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 1)
	require.Equal(t, "a3", resp.Activities[0].ID)

	resp, err = s.activityDomain.GetUserActivity(ctx, &model.GetUserActivityRequest{UserID: testutil.User3.ID})
	require.NoError(t, err)
	require.Empty(t, resp.Activities)

	_, err = s.activityDomain.GetUserActivity(
		testutil.NewMockContextWithUserID(ctx, ""), &model.GetUserActivityRequest{})
	require.True(t, errorx.Is(err, errorx.Unauthenticated))
}
