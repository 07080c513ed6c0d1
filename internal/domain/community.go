package domain

import (
	"context"
	"sort"

	"github.com/timebank-lab/backend/internal/model"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

const defaultPopularCommunitiesLimit = 5

type CommunityDomain interface {
	GetPopular(context.Context, *model.GetPopularCommunitiesRequest) (*model.GetPopularCommunitiesResponse, error)
}

type communityDomain struct {
	communityRepo repository.CommunityRepository
	userRepo      repository.UserRepository
}

func NewCommunityDomain(
	communityRepo repository.CommunityRepository,
	userRepo repository.UserRepository,
) *communityDomain {
	return &communityDomain{
		communityRepo: communityRepo,
		userRepo:      userRepo,
	}
}

// GetPopular returns the communities with the most members, members populated.
func (d *communityDomain) GetPopular(
	ctx context.Context, req *model.GetPopularCommunitiesRequest,
) (*model.GetPopularCommunitiesResponse, error) {
	limit, err := resolveLimit(ctx, req.Limit, defaultPopularCommunitiesLimit)
	if err != nil {
		return nil, err
	}

	communities, err := d.communityRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get communities: %v", err)
		return nil, errorx.Unknown
	}

	sort.SliceStable(communities, func(i, j int) bool {
		return len(communities[i].Members) > len(communities[j].Members)
	})

	if len(communities) > limit {
		communities = communities[:limit]
	}

	memberIDs := []string{}
	for _, c := range communities {
		memberIDs = append(memberIDs, c.Members...)
		if c.AdminID.Valid {
			memberIDs = append(memberIDs, c.AdminID.String)
		}
	}

	members, err := d.userRepo.GetByIDs(ctx, memberIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get community members: %v", err)
		return nil, errorx.Unknown
	}

	usersByID := userMap(members)
	result := []model.Community{}
	for i := range communities {
		result = append(result, model.ConvertCommunity(&communities[i], usersByID))
	}

	return &model.GetPopularCommunitiesResponse{Communities: result}, nil
}
