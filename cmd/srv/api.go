package main

import (
	"net/http"

	"github.com/minerush/backend/internal/middleware"
	"github.com/minerush/backend/pkg/router"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
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
	s.loadRouter()

	handler := cors.New(cors.Options{
		AllowedOrigins:   s.configs.ApiServer.AllowCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(s.router.Handler())

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: handler,
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Public API
	publicRouter := s.router.Branch()
	{
		router.POST(publicRouter, "/auth/telegram", s.authDomain.TelegramLogin)
		router.GET(publicRouter, "/getLeaderboard", s.statisticDomain.GetLeaderboard)
	}

	// These following APIs need authentication.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate())
	{
		// User API
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)
		router.POST(authRouter, "/linkWallet", s.userDomain.LinkWallet)
		router.GET(authRouter, "/getMyPayments", s.userDomain.GetMyPayments)
		router.GET(authRouter, "/getMyRank", s.statisticDomain.GetRank)

		// Daily Rush API
		router.GET(authRouter, "/getRushEvent", s.rushDomain.GetEvent)
		router.POST(authRouter, "/claimTicket", s.rushDomain.ClaimTicket)
	}
}
