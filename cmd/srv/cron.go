package main

import (
	"github.com/minerush/backend/internal/domain/cron"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(ct *cli.Context) error {
	if err := s.loadConfig(ct); err != nil {
		return err
	}

	s.loadLogger()
	s.db = s.newDatabase()
	s.loadContext()
	s.migrateDB()
	s.loadRedisClient()
	s.loadRepos()
	s.loadDomains()

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Start(
		s.ctx,
		cron.NewRushEventCronJob(s.rushDomain, s.leaderboard, s.configs.Rush.Location()),
	)

	return nil
}
