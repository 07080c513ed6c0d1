package model

type GetUserActivityRequest struct {
	// UserID is the internal id of the receiver. Empty means the requesting
	// user.
	UserID string `form:"userId"`
}

type GetUserActivityResponse struct {
	Activities []Activity `json:"activities"`
}
