package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/testutil"
)

func Test_communityRepository(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	redisClient := testutil.NewMockRedisClient()
	communityRepo := repository.NewCommunityRepository().WithCache(redisClient)

	communities, err := communityRepo.GetList(ctx)
	require.NoError(t, err)
	require.Len(t, communities, 2)
	require.Equal(t, testutil.Community1.ID, communities[0].ID)

	community, err := communityRepo.GetByID(ctx, testutil.Community1.ID)
	require.NoError(t, err)
	require.Equal(t, testutil.Community1.Name, community.Name)
	require.True(t, redisClient.Has("cache:community:"+testutil.Community1.ID))

	err = communityRepo.UpdateByID(ctx, testutil.Community1.ID, &entity.Community{
		Threads: entity.Array[string]{"t1"},
	})
	require.NoError(t, err)
	require.False(t, redisClient.Has("cache:community:"+testutil.Community1.ID))

	found, err := communityRepo.GetByIDs(ctx, []string{testutil.Community1.ID, testutil.Community2.ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, c := range found {
		if c.ID == testutil.Community1.ID {
			require.Equal(t, entity.Array[string]{"t1"}, c.Threads)
			require.True(t, c.AdminID.Valid)
		}
	}
}
