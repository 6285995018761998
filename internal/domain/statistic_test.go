package domain

import (
	"testing"
	"time"

	"github.com/minerush/backend/internal/model"
	"github.com/minerush/backend/internal/repository"
	"github.com/minerush/backend/pkg/dateutil"
	"github.com/minerush/backend/pkg/errorx"
	"github.com/minerush/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_statisticDomain_GetLeaderboard(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	eventID := dateutil.DayID(time.Now().UTC())
	leaderboard := testutil.NewMockLeaderboard()
	require.NoError(t, leaderboard.ChangeRewardLeaderboard(ctx, 300, eventID, testutil.User1.ID))
	require.NoError(t, leaderboard.ChangeRewardLeaderboard(ctx, 500, eventID, testutil.User2.ID))
	require.NoError(t, leaderboard.ChangeRewardLeaderboard(ctx, 400, eventID, testutil.User1.ID))

	d := NewStatisticDomain(leaderboard, repository.NewUserRepository())

	resp, err := d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{})
	require.NoError(t, err)
	require.Equal(t, []model.UserStatistic{
		{
			User:        model.User{ID: testutil.User1.ID, Name: testutil.User1.Name},
			Value:       700,
			CurrentRank: 1,
		},
		{
			User:        model.User{ID: testutil.User2.ID, Name: testutil.User2.Name},
			Value:       500,
			CurrentRank: 2,
		},
	}, resp.Leaderboard)

	resp, err = d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Offset: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 1)
	require.Equal(t, testutil.User2.ID, resp.Leaderboard[0].User.ID)
	require.Equal(t, 2, resp.Leaderboard[0].CurrentRank)

	_, err = d.GetLeaderboard(ctx, &model.GetLeaderboardRequest{Limit: 51})
	require.Equal(t, errorx.New(errorx.BadRequest, "Invalid limit value"), err)
}

func Test_statisticDomain_GetRank(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	eventID := dateutil.DayID(time.Now().UTC())
	leaderboard := testutil.NewMockLeaderboard()
	require.NoError(t, leaderboard.ChangeRewardLeaderboard(ctx, 300, eventID, testutil.User1.ID))
	require.NoError(t, leaderboard.ChangeRewardLeaderboard(ctx, 500, eventID, testutil.User2.ID))

	d := NewStatisticDomain(leaderboard, repository.NewUserRepository())

	resp, err := d.GetRank(testutil.MockContextWithUserID(ctx, testutil.User1.ID), &model.GetRankRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), resp.Rank)

	resp, err = d.GetRank(testutil.MockContextWithUserID(ctx, testutil.User2.ID), &model.GetRankRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.Rank)
}
