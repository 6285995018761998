package repository_test

import (
	"testing"

	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/internal/repository"
	"github.com/minerush/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_rushRepository_AdvanceProgress(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	rushRepo := repository.NewRushRepository()

	progress := &entity.RushProgress{
		UserID:        testutil.User1.ID,
		EventID:       "2026-09-01",
		CurrentTicket: 1,
	}
	require.NoError(t, rushRepo.CreateProgress(ctx, progress))

	require.NoError(t, rushRepo.AdvanceProgress(ctx, testutil.User1.ID, "2026-09-01", 1, 0))

	// The cursor already moved past ticket 1; a second advance from the
	// same position loses the guard.
	err := rushRepo.AdvanceProgress(ctx, testutil.User1.ID, "2026-09-01", 1, 0)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, rushRepo.AdvanceProgress(ctx, testutil.User1.ID, "2026-09-01", 2, 0.5))

	got, err := rushRepo.GetProgress(ctx, testutil.User1.ID, "2026-09-01")
	require.NoError(t, err)
	require.Equal(t, 3, got.CurrentTicket)
	require.Equal(t, 0.5, got.TotalSpent)
	require.Equal(t, 2, got.ClaimedCount())
}

func Test_rushRepository_CheckAndIncreaseBonuses(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	rushRepo := repository.NewRushRepository()

	require.NoError(t, rushRepo.CreateProgress(ctx, &entity.RushProgress{
		UserID:        testutil.User1.ID,
		EventID:       "2026-09-01",
		CurrentTicket: 1,
	}))

	for i := 0; i < 3; i++ {
		require.NoError(t, rushRepo.CheckAndIncreaseBonuses(ctx, testutil.User1.ID, "2026-09-01", 3))
	}

	err := rushRepo.CheckAndIncreaseBonuses(ctx, testutil.User1.ID, "2026-09-01", 3)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := rushRepo.GetProgress(ctx, testutil.User1.ID, "2026-09-01")
	require.NoError(t, err)
	require.Equal(t, 3, got.SurpriseBonuses)
}

func Test_rushRepository_GetRewardTotalsByEventID(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	rushRepo := repository.NewRushRepository()

	require.NoError(t, rushRepo.CreateEvent(ctx, &entity.RushEvent{
		ID:           "2026-09-01",
		Theme:        "gold_rush",
		TotalTickets: 3,
	}))
	require.NoError(t, rushRepo.CreateTickets(ctx, []entity.RushTicket{
		{EventID: "2026-09-01", Number: 1, Kind: entity.TicketFree, Reward: 100},
		{EventID: "2026-09-01", Number: 2, Kind: entity.TicketPaid, Cost: 0.5, Reward: 200},
		{EventID: "2026-09-01", Number: 3, Kind: entity.TicketFree, Reward: 300},
	}))

	// User1 claimed tickets 1 and 2, user2 claimed only ticket 1.
	require.NoError(t, rushRepo.CreateProgress(ctx, &entity.RushProgress{
		UserID: testutil.User1.ID, EventID: "2026-09-01", CurrentTicket: 3,
	}))
	require.NoError(t, rushRepo.CreateProgress(ctx, &entity.RushProgress{
		UserID: testutil.User2.ID, EventID: "2026-09-01", CurrentTicket: 2,
	}))

	totals, err := rushRepo.GetRewardTotalsByEventID(ctx, "2026-09-01")
	require.NoError(t, err)

	byUser := map[string]int64{}
	for _, total := range totals {
		byUser[total.UserID] = total.Reward
	}
	require.Equal(t, map[string]int64{
		testutil.User1.ID: 300,
		testutil.User2.ID: 100,
	}, byUser)
}
