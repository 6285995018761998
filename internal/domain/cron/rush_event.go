package cron

import (
	"context"
	"time"

	"github.com/minerush/backend/internal/domain/statistic"
	"github.com/minerush/backend/pkg/dateutil"
	"github.com/minerush/backend/pkg/xcontext"
)

type eventEnsurer interface {
	EnsureTodayEvent(ctx context.Context) error
}

// RushEventCronJob pre-creates the daily rush event right after midnight, so
// the first request of the day never pays the generation cost. It also drops
// the leaderboard cache of the finished day.
type RushEventCronJob struct {
	rushDomain  eventEnsurer
	leaderboard statistic.Leaderboard
	location    *time.Location
}

func NewRushEventCronJob(
	rushDomain eventEnsurer,
	leaderboard statistic.Leaderboard,
	location *time.Location,
) *RushEventCronJob {
	return &RushEventCronJob{
		rushDomain:  rushDomain,
		leaderboard: leaderboard,
		location:    location,
	}
}

func (job *RushEventCronJob) Do(ctx context.Context) {
	if err := job.rushDomain.EnsureTodayEvent(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create the daily event: %v", err)
	}

	yesterday := dateutil.DayID(time.Now().In(job.location).AddDate(0, 0, -1))
	if err := job.leaderboard.RemoveLeaderboard(ctx, yesterday); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot remove leaderboard of %s: %v", yesterday, err)
	}
}

func (job *RushEventCronJob) RunNow() bool {
	return true
}

func (job *RushEventCronJob) Next() time.Time {
	// A second past midnight avoids racing the day boundary itself.
	return dateutil.NextMidnight(time.Now().In(job.location)).Add(time.Second)
}
