package domain

import (
	"context"
	"time"

	"github.com/minerush/backend/internal/domain/statistic"
	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/internal/model"
	"github.com/minerush/backend/internal/repository"
	"github.com/minerush/backend/pkg/dateutil"
	"github.com/minerush/backend/pkg/errorx"
	"github.com/minerush/backend/pkg/xcontext"
)

const maxLeaderboardLimit = 50

type StatisticDomain interface {
	GetLeaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	GetRank(context.Context, *model.GetRankRequest) (*model.GetRankResponse, error)
}

type statisticDomain struct {
	leaderboard statistic.Leaderboard
	userRepo    repository.UserRepository
}

func NewStatisticDomain(
	leaderboard statistic.Leaderboard,
	userRepo repository.UserRepository,
) *statisticDomain {
	return &statisticDomain{leaderboard: leaderboard, userRepo: userRepo}
}

func (d *statisticDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	if req.Limit == 0 {
		req.Limit = 10
	}

	if req.Limit < 0 || req.Limit > maxLeaderboardLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit value")
	}

	eventID := todayEventID(ctx)
	entries, err := d.leaderboard.GetLeaderboard(ctx, eventID, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.UserID)
	}

	users, err := d.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users of leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	usersByID := map[string]entity.User{}
	for _, user := range users {
		usersByID[user.ID] = user
	}

	leaderboard := []model.UserStatistic{}
	for i, entry := range entries {
		user := usersByID[entry.UserID]
		leaderboard = append(leaderboard, model.UserStatistic{
			User:        model.User{ID: entry.UserID, Name: user.Name},
			Value:       entry.Value,
			CurrentRank: req.Offset + i + 1,
		})
	}

	return &model.GetLeaderboardResponse{Leaderboard: leaderboard}, nil
}

func (d *statisticDomain) GetRank(
	ctx context.Context, req *model.GetRankRequest,
) (*model.GetRankResponse, error) {
	rank, err := d.leaderboard.GetRank(ctx, todayEventID(ctx), xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rank: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetRankResponse{Rank: rank}, nil
}

func todayEventID(ctx context.Context) string {
	return dateutil.DayID(time.Now().In(xcontext.Configs(ctx).Rush.Location()))
}
