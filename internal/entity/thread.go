package entity

import (
	"database/sql"

	"github.com/timebank-lab/backend/pkg/enum"
)

type ThreadStatus string

var (
	ThreadPending  = enum.New(ThreadStatus("pending"))
	ThreadAccepted = enum.New(ThreadStatus("accepted"))
	ThreadRejected = enum.New(ThreadStatus("rejected"))
)

type ApprovalType string

var (
	ApprovalOnline  = enum.New(ApprovalType("online"))
	ApprovalOffline = enum.New(ApprovalType("offline"))
)

type TimePeriod string

var (
	OneHour     = enum.New(TimePeriod("1hr"))
	TwoHours    = enum.New(TimePeriod("2hr"))
	SixHours    = enum.New(TimePeriod("6hr"))
	TwelveHours = enum.New(TimePeriod("12hr"))
	OneDay      = enum.New(TimePeriod("1day"))
	ThreeDays   = enum.New(TimePeriod("3days"))
	OneWeek     = enum.New(TimePeriod("1week"))
	TwoWeeks    = enum.New(TimePeriod("2weeks"))
	ThirtyDays  = enum.New(TimePeriod("30days"))
)

type Thread struct {
	Base

	AuthorID    string         `gorm:"index;not null"`
	CommunityID sql.NullString `gorm:"index"`

	// ParentID is set for replies only.
	ParentID sql.NullString `gorm:"index"`
	Children Array[string]

	FullName     string
	PhoneNo      string
	Email        string
	ApprovalType ApprovalType
	Description  string
	TimePeriod   TimePeriod
	Rewards      string

	Status       ThreadStatus `gorm:"default:pending"`
	AcceptedByID sql.NullString
	AcceptedAt   sql.NullTime
	AssistedBy   Array[string]

	Likes   Array[string]
	Reposts Array[string]
}
