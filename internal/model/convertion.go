package model

import (
	"time"

	"github.com/timebank-lab/backend/internal/entity"
)

const DefaultTimeLayout string = time.RFC3339Nano

func stringList(a entity.Array[string]) []string {
	if a == nil {
		return []string{}
	}

	return append([]string{}, a...)
}

func ConvertUserSummary(user *entity.User) UserSummary {
	if user == nil {
		return UserSummary{}
	}

	return UserSummary{
		ID:         user.ID,
		ExternalID: user.ExternalID,
		Name:       user.Name,
		Username:   user.Username,
		Image:      user.Image,
	}
}

func ConvertUserProfile(user *entity.User) UserProfile {
	if user == nil {
		return UserProfile{}
	}

	return UserProfile{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Image:    user.Image,
		Bio:      user.Bio,
	}
}

// UserRef resolves id against users, leaving it unresolved when absent.
func UserRef(id string, users map[string]entity.User) Ref[UserSummary] {
	if id == "" {
		return Ref[UserSummary]{}
	}

	if u, ok := users[id]; ok {
		return Resolved(id, ConvertUserSummary(&u))
	}

	return RefID[UserSummary](id)
}

func ConvertUser(
	user *entity.User,
	threads map[string]entity.Thread,
	communities map[string]entity.Community,
) User {
	if user == nil {
		return User{}
	}

	assisted := []Ref[ThreadSummary]{}
	for _, id := range user.AppealsAssisted {
		if t, ok := threads[id]; ok {
			assisted = append(assisted, Resolved(id, ConvertThreadSummary(&t)))
		} else {
			assisted = append(assisted, RefID[ThreadSummary](id))
		}
	}

	clientCommunities := []Ref[CommunitySummary]{}
	for _, id := range user.Communities {
		if c, ok := communities[id]; ok {
			clientCommunities = append(clientCommunities, Resolved(id, ConvertCommunitySummary(&c)))
		} else {
			clientCommunities = append(clientCommunities, RefID[CommunitySummary](id))
		}
	}

	return User{
		ID:              user.ID,
		ExternalID:      user.ExternalID,
		Username:        user.Username,
		Name:            user.Name,
		Bio:             user.Bio,
		Image:           user.Image,
		Skills:          stringList(user.Skills),
		Onboarded:       user.Onboarded,
		TimeBalance:     user.TimeBalance,
		Threads:         stringList(user.Threads),
		AppealsCreated:  stringList(user.AppealsCreated),
		AppealsAssisted: assisted,
		Communities:     clientCommunities,
	}
}

func ConvertCommunitySummary(community *entity.Community) CommunitySummary {
	if community == nil {
		return CommunitySummary{}
	}

	return CommunitySummary{
		ID:       community.ID,
		Name:     community.Name,
		Username: community.Username,
		Image:    community.Image,
	}
}

func ConvertCommunity(community *entity.Community, users map[string]entity.User) Community {
	if community == nil {
		return Community{}
	}

	members := []Ref[UserSummary]{}
	for _, id := range community.Members {
		members = append(members, UserRef(id, users))
	}

	return Community{
		ID:          community.ID,
		Name:        community.Name,
		Username:    community.Username,
		Image:       community.Image,
		Description: community.Description,
		Admin:       UserRef(community.AdminID.String, users),
		Members:     members,
		Threads:     stringList(community.Threads),
	}
}

func ConvertThreadSummary(thread *entity.Thread) ThreadSummary {
	if thread == nil {
		return ThreadSummary{}
	}

	return ThreadSummary{
		ID:          thread.ID,
		Description: thread.Description,
		Status:      string(thread.Status),
		Author:      thread.AuthorID,
	}
}

// ConvertThread expands the author, acceptedBy and community references found
// in users and communities. Children are given already converted.
func ConvertThread(
	thread *entity.Thread,
	users map[string]entity.User,
	communities map[string]entity.Community,
	children []Ref[Thread],
) Thread {
	if thread == nil {
		return Thread{}
	}

	if children == nil {
		children = []Ref[Thread]{}
	}

	community := Ref[CommunitySummary]{}
	if thread.CommunityID.Valid {
		if c, ok := communities[thread.CommunityID.String]; ok {
			community = Resolved(c.ID, ConvertCommunitySummary(&c))
		} else {
			community = RefID[CommunitySummary](thread.CommunityID.String)
		}
	}

	acceptedAt := ""
	if thread.AcceptedAt.Valid {
		acceptedAt = thread.AcceptedAt.Time.Format(DefaultTimeLayout)
	}

	return Thread{
		ID:           thread.ID,
		FullName:     thread.FullName,
		PhoneNo:      thread.PhoneNo,
		Email:        thread.Email,
		ApprovalType: string(thread.ApprovalType),
		Description:  thread.Description,
		TimePeriod:   string(thread.TimePeriod),
		Rewards:      thread.Rewards,
		Author:       UserRef(thread.AuthorID, users),
		Community:    community,
		ParentID:     thread.ParentID.String,
		Children:     children,
		Status:       string(thread.Status),
		AcceptedBy:   UserRef(thread.AcceptedByID.String, users),
		AcceptedAt:   acceptedAt,
		AssistedBy:   stringList(thread.AssistedBy),
		Likes:        stringList(thread.Likes),
		Reposts:      stringList(thread.Reposts),
		CreatedAt:    thread.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertActivity(
	activity *entity.Activity,
	users map[string]entity.User,
	threads map[string]entity.Thread,
) Activity {
	if activity == nil {
		return Activity{}
	}

	thread := RefID[ThreadSummary](activity.ThreadID)
	if t, ok := threads[activity.ThreadID]; ok {
		thread = Resolved(t.ID, ConvertThreadSummary(&t))
	}

	return Activity{
		ID:        activity.ID,
		Type:      string(activity.Type),
		Receiver:  UserRef(activity.ReceiverID, users),
		Sender:    UserRef(activity.SenderID, users),
		Thread:    thread,
		Status:    string(activity.Status),
		Read:      activity.Read,
		CreatedAt: activity.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertActivityCreatedEvent(activity *entity.Activity) ActivityCreatedEvent {
	return ActivityCreatedEvent{
		Op:         ActivityCreatedOp,
		ID:         activity.ID,
		Type:       string(activity.Type),
		ReceiverID: activity.ReceiverID,
		SenderID:   activity.SenderID,
		ThreadID:   activity.ThreadID,
		Status:     string(activity.Status),
		CreatedAt:  activity.CreatedAt.Format(DefaultTimeLayout),
	}
}
