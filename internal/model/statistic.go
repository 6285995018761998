package model

type UserStatistic struct {
	User        User `json:"user"`
	Value       int  `json:"value"`
	CurrentRank int  `json:"current_rank"`
}

type GetLeaderboardRequest struct {
	Offset int `form:"offset" json:"offset"`
	Limit  int `form:"limit" json:"limit"`
}

type GetLeaderboardResponse struct {
	Leaderboard []UserStatistic `json:"leaderboard"`
}

type GetRankRequest struct{}

type GetRankResponse struct {
	Rank uint64 `json:"rank"`
}
