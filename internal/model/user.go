package model

type GetUserRequest struct {
	// UserID is the external id. Empty means the requesting user.
	UserID string `form:"userId"`
}

type GetUserResponse struct {
	User User `json:"user"`
}

type UpdateUserRequest struct {
	UserID   string   `json:"userId"`
	Username string   `json:"username" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Bio      string   `json:"bio"`
	Image    string   `json:"image"`
	Skills   []string `json:"skills"`
	Path     string   `json:"path"`
}

type UpdateUserResponse struct{}

type GetSuggestedUsersRequest struct {
	UserID string `form:"userId"`
	Limit  int    `form:"limit"`
}

type GetSuggestedUsersResponse struct {
	Users []UserSummary `json:"users"`
}

type GetUserProfilesRequest struct {
	Limit int `form:"limit"`
	Skip  int `form:"skip"`
}

type GetUserProfilesResponse struct {
	Users []UserProfile `json:"users"`
}
