package model

type GetPostsRequest struct {
	PageNumber int `form:"pageNumber"`
	PageSize   int `form:"pageSize"`
}

type GetPostsResponse struct {
	Posts  []Thread `json:"posts"`
	IsNext bool     `json:"isNext"`
}

type GetThreadRequest struct {
	ID string `form:"id"`
}

type GetThreadResponse struct {
	Thread Thread `json:"thread"`
}

type CreateThreadRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	PhoneNo      string `json:"phoneNo" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	ApprovalType string `json:"approvalType" validate:"required,oneof=online offline"`
	Description  string `json:"description" validate:"required,min=3"`
	TimePeriod   string `json:"timePeriod" validate:"required,oneof=1hr 2hr 6hr 12hr 1day 3days 1week 2weeks 30days"`
	Rewards      string `json:"rewards" validate:"required"`

	// Author is the internal id of the author. An authenticated caller may
	// only name itself.
	Author      string `json:"author"`
	CommunityID string `json:"communityId"`
	Path        string `json:"path"`
}

type CreateThreadResponse struct {
	ID string `json:"id"`
}

type AddCommentRequest struct {
	ThreadID    string `json:"threadId" validate:"required"`
	CommentText string `json:"commentText" validate:"required,min=3"`
	UserID      string `json:"userId"`
	Path        string `json:"path"`
}

type AddCommentResponse struct {
	ID string `json:"id"`
}

type DeleteThreadRequest struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

type DeleteThreadResponse struct{}

type AcceptThreadRequest struct {
	ThreadID string `json:"threadId"`

	// UserID is the external id of the accepting user. It is only read on
	// calls without a request identity.
	UserID string `json:"userId"`
}

type AcceptThreadResponse struct {
	Message string `json:"message"`
}
