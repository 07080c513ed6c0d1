package model

type GetPopularCommunitiesRequest struct {
	Limit int `form:"limit"`
}

type GetPopularCommunitiesResponse struct {
	Communities []Community `json:"communities"`
}
