package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/repository"
)

var fixtureTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	User1 = entity.User{
		Base:       entity.Base{ID: "user1", CreatedAt: fixtureTime},
		ExternalID: "ext_user1",
		Username:   "user1",
		Name:       "User One",
		Image:      "https://img.example.com/user1.png",
		Bio:        "Gardener",
		Onboarded:  true,
		Skills:     entity.Array[string]{"gardening"},
	}

	User2 = entity.User{
		Base:       entity.Base{ID: "user2", CreatedAt: fixtureTime.Add(time.Minute)},
		ExternalID: "ext_user2",
		Username:   "user2",
		Name:       "User Two",
		Onboarded:  true,
	}

	User3 = entity.User{
		Base:       entity.Base{ID: "user3", CreatedAt: fixtureTime.Add(2 * time.Minute)},
		ExternalID: "ext_user3",
		Username:   "user3",
		Name:       "User Three",
		Onboarded:  true,
	}

	Users = []*entity.User{&User1, &User2, &User3}
)

var (
	Community1 = entity.Community{
		Base:        entity.Base{ID: "community1", CreatedAt: fixtureTime},
		Name:        "Neighbours",
		Username:    "neighbours",
		Description: "People living around the park",
		AdminID:     sql.NullString{Valid: true, String: User1.ID},
		Members:     entity.Array[string]{User1.ID},
	}

	Community2 = entity.Community{
		Base:     entity.Base{ID: "community2", CreatedAt: fixtureTime.Add(time.Minute)},
		Name:     "Students",
		Username: "students",
		AdminID:  sql.NullString{Valid: true, String: User2.ID},
		Members:  entity.Array[string]{User1.ID, User2.ID, User3.ID},
	}

	Communities = []*entity.Community{&Community1, &Community2}
)

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertCommunities(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	for _, u := range Users {
		user := *u
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func InsertCommunities(ctx context.Context) {
	communityRepo := repository.NewCommunityRepository()
	for _, c := range Communities {
		community := *c
		if err := communityRepo.Create(ctx, &community); err != nil {
			panic(err)
		}
	}
}
