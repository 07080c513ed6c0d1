package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/testutil"
)

type domainSuite struct {
	threadRepo    repository.ThreadRepository
	userRepo      repository.UserRepository
	communityRepo repository.CommunityRepository
	activityRepo  repository.ActivityRepository
	publisher     *testutil.MockPublisher

	threadDomain     *threadDomain
	assistanceDomain *assistanceDomain
	activityDomain   *activityDomain
	userDomain       *userDomain
	communityDomain  *communityDomain
}

func newDomainSuite() *domainSuite {
	s := &domainSuite{
		threadRepo:    repository.NewThreadRepository(),
		userRepo:      repository.NewUserRepository(),
		communityRepo: repository.NewCommunityRepository(),
		activityRepo:  repository.NewActivityRepository(),
		publisher:     &testutil.MockPublisher{},
	}

	s.threadDomain = NewThreadDomain(s.threadRepo, s.userRepo, s.communityRepo, s.activityRepo, s.publisher)
	s.assistanceDomain = NewAssistanceDomain(s.threadRepo, s.userRepo, s.activityRepo, s.publisher)
	s.activityDomain = NewActivityDomain(s.activityRepo, s.userRepo, s.threadRepo)
	s.userDomain = NewUserDomain(s.userRepo, s.threadRepo, s.communityRepo)
	s.communityDomain = NewCommunityDomain(s.communityRepo, s.userRepo)
	return s
}

// createThread inserts a pending top level thread of authorID created at
// createdAt and registers it in the thread list of the author.
func (s *domainSuite) createThread(
	t *testing.T, ctx context.Context, id, authorID string, createdAt time.Time,
) *entity.Thread {
	thread := &entity.Thread{
		Base:         entity.Base{ID: id, CreatedAt: createdAt},
		AuthorID:     authorID,
		FullName:     "Requester",
		PhoneNo:      "0123456789",
		Email:        "requester@example.com",
		ApprovalType: entity.ApprovalOnline,
		Description:  "Need help moving boxes",
		TimePeriod:   entity.TwoHours,
		Rewards:      "2 credits",
		Status:       entity.ThreadPending,
	}
	require.NoError(t, s.threadRepo.Create(ctx, thread))

	author, err := s.userRepo.GetByID(ctx, authorID)
	require.NoError(t, err)
	require.NoError(t, s.userRepo.UpdateByID(ctx, authorID,
		&entity.User{Threads: append(author.Threads, id)}))

	return thread
}

func (s *domainSuite) activityCount(t *testing.T, ctx context.Context, threadID string) int {
	activities, err := s.activityRepo.GetByThreadID(ctx, threadID)
	require.NoError(t, err)
	return len(activities)
}

// assertAcceptedInvariant checks that an accepted thread names an acceptor
// who is an existing user distinct from the author.
func (s *domainSuite) assertAcceptedInvariant(t *testing.T, ctx context.Context, threadID string) {
	thread, err := s.threadRepo.GetByID(ctx, threadID)
	require.NoError(t, err)
	if thread.Status != entity.ThreadAccepted {
		return
	}

	require.True(t, thread.AcceptedByID.Valid)
	require.NotEqual(t, thread.AuthorID, thread.AcceptedByID.String)
	_, err = s.userRepo.GetByID(ctx, thread.AcceptedByID.String)
	require.NoError(t, err)
}
