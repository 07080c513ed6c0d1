package model

type UserSummary struct {
	ID         string `json:"id"`
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Image      string `json:"image"`
}

type UserProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Image    string `json:"image"`
	Bio      string `json:"bio"`
}

type User struct {
	ID              string                  `json:"id"`
	ExternalID      string                  `json:"externalId"`
	Username        string                  `json:"username"`
	Name            string                  `json:"name"`
	Bio             string                  `json:"bio"`
	Image           string                  `json:"image"`
	Skills          []string                `json:"skills"`
	Onboarded       bool                    `json:"onboarded"`
	TimeBalance     int64                   `json:"timeBalance"`
	Threads         []string                `json:"threads"`
	AppealsCreated  []string                `json:"appealsCreated"`
	AppealsAssisted []Ref[ThreadSummary]    `json:"appealsAssisted"`
	Communities     []Ref[CommunitySummary] `json:"communities"`
}

type CommunitySummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

type Community struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Username    string             `json:"username"`
	Image       string             `json:"image"`
	Description string             `json:"description"`
	Admin       Ref[UserSummary]   `json:"admin"`
	Members     []Ref[UserSummary] `json:"members"`
	Threads     []string           `json:"threads"`
}

type ThreadSummary struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Author      string `json:"author"`
}

type Thread struct {
	ID           string                `json:"id"`
	FullName     string                `json:"fullName"`
	PhoneNo      string                `json:"phoneNo"`
	Email        string                `json:"email"`
	ApprovalType string                `json:"approvalType"`
	Description  string                `json:"description"`
	TimePeriod   string                `json:"timePeriod"`
	Rewards      string                `json:"rewards"`
	Author       Ref[UserSummary]      `json:"author"`
	Community    Ref[CommunitySummary] `json:"community"`
	ParentID     string                `json:"parentId,omitempty"`
	Children     []Ref[Thread]         `json:"children"`
	Status       string                `json:"status"`
	AcceptedBy   Ref[UserSummary]      `json:"acceptedBy"`
	AcceptedAt   string                `json:"acceptedAt,omitempty"`
	AssistedBy   []string              `json:"assistedBy"`
	Likes        []string              `json:"likes"`
	Reposts      []string              `json:"reposts"`
	CreatedAt    string                `json:"createdAt"`
}

type Activity struct {
	ID        string             `json:"id"`
	Type      string             `json:"type"`
	Receiver  Ref[UserSummary]   `json:"receiver"`
	Sender    Ref[UserSummary]   `json:"sender"`
	Thread    Ref[ThreadSummary] `json:"thread"`
	Status    string             `json:"status,omitempty"`
	Read      bool               `json:"read"`
	CreatedAt string             `json:"createdAt"`
}
