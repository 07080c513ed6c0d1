package model

type RequestAssistanceRequest struct {
	ThreadID string `json:"threadId"`

	// UserID is the external id of the offering user. It is only read on
	// calls without a request identity.
	UserID string `json:"userId"`
	Status string `json:"status"`
}

type RequestAssistanceResponse struct {
	Message string `json:"message"`
}

type RespondAssistanceRequest struct {
	ActivityID    string `json:"activityId"`
	ThreadID      string `json:"threadId"`
	CurrentUserID string `json:"currentUserId"`
	SenderID      string `json:"senderId"`
	Action        string `json:"action"`
}

type RespondAssistanceResponse struct {
	Message string `json:"message"`
}
