package entity

import "github.com/timebank-lab/backend/pkg/enum"

type ActivityType string

var (
	ActivityAssistRequest  = enum.New(ActivityType("assist_request"))
	ActivityAssistApproved = enum.New(ActivityType("assist_approved"))
	ActivityAssistDeclined = enum.New(ActivityType("assist_declined"))
	ActivityAccept         = enum.New(ActivityType("accept"))
	ActivityReject         = enum.New(ActivityType("reject"))
	ActivityOther          = enum.New(ActivityType("other"))
)

type ActivityStatus string

var (
	ActivityPending  = enum.New(ActivityStatus("pending"))
	ActivityApproved = enum.New(ActivityStatus("approved"))
	ActivityDeclined = enum.New(ActivityStatus("declined"))
)

// Activity is a notification addressed to ReceiverID. Status is only used by
// assist requests and is empty otherwise.
type Activity struct {
	Base

	Type       ActivityType
	ReceiverID string `gorm:"index;not null"`
	SenderID   string `gorm:"not null"`
	ThreadID   string `gorm:"index"`
	Status     ActivityStatus
	Read       bool `gorm:"default:false"`
}
