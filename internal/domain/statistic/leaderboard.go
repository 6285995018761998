package statistic

import (
	"context"
	"fmt"

	"github.com/minerush/backend/internal/repository"
	"github.com/minerush/backend/pkg/xcontext"
	"github.com/minerush/backend/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

// Leaderboard ranks users of one event by their claimed reward total. The
// ranking lives in a redis sorted set and can always be rebuilt from the
// database.
type Leaderboard interface {
	GetLeaderboard(ctx context.Context, eventID string, offset, limit int) ([]Entry, error)
	GetRank(ctx context.Context, eventID, userID string) (uint64, error)
	ChangeRewardLeaderboard(ctx context.Context, value int64, eventID, userID string) error
	RemoveLeaderboard(ctx context.Context, eventID string) error
}

type Entry struct {
	UserID string
	Value  int
}

type leaderboard struct {
	rushRepo    repository.RushRepository
	redisClient xredis.Client
}

func New(rushRepo repository.RushRepository, redisClient xredis.Client) *leaderboard {
	return &leaderboard{rushRepo: rushRepo, redisClient: redisClient}
}

func (l *leaderboard) GetLeaderboard(
	ctx context.Context, eventID string, offset, limit int,
) ([]Entry, error) {
	key := redisKeyLeaderboard(eventID)
	if err := l.loadIfMissing(ctx, key, eventID); err != nil {
		return nil, err
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, key, offset, limit)
	if err != nil {
		return nil, err
	}

	entries := []Entry{}
	for _, z := range results {
		entries = append(entries, Entry{
			UserID: z.Member.(string),
			Value:  int(z.Score),
		})
	}

	return entries, nil
}

func (l *leaderboard) GetRank(ctx context.Context, eventID, userID string) (uint64, error) {
	key := redisKeyLeaderboard(eventID)
	if err := l.loadIfMissing(ctx, key, eventID); err != nil {
		return 0, err
	}

	rank, err := l.redisClient.ZRevRank(ctx, key, userID)
	if err != nil {
		// Users who claimed nothing today have no rank.
		return 0, nil
	}

	return rank + 1, nil
}

func (l *leaderboard) ChangeRewardLeaderboard(
	ctx context.Context, value int64, eventID, userID string,
) error {
	key := redisKeyLeaderboard(eventID)
	if err := l.loadIfMissing(ctx, key, eventID); err != nil {
		return err
	}

	return l.redisClient.ZIncrBy(ctx, key, value, userID)
}

// RemoveLeaderboard drops the sorted set of a finished event. The database
// keeps the underlying reward totals.
func (l *leaderboard) RemoveLeaderboard(ctx context.Context, eventID string) error {
	return l.redisClient.Del(ctx, redisKeyLeaderboard(eventID))
}

// loadIfMissing rebuilds the sorted set from the database when the key has
// been evicted or never written.
func (l *leaderboard) loadIfMissing(ctx context.Context, key, eventID string) error {
	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return err
	}

	if ok {
		return nil
	}

	totals, err := l.rushRepo.GetRewardTotalsByEventID(ctx, eventID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load reward totals: %v", err)
		return err
	}

	for _, total := range totals {
		err := l.redisClient.ZAdd(ctx, key, redis.Z{
			Member: total.UserID,
			Score:  float64(total.Reward),
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot fill leaderboard: %v", err)
			return err
		}
	}

	return nil
}

func redisKeyLeaderboard(eventID string) string {
	return fmt.Sprintf("rush:leaderboard:%s", eventID)
}
