package main

import (
	"context"
	"net/http"

	"github.com/minerush/backend/config"
	"github.com/minerush/backend/internal/domain"
	"github.com/minerush/backend/internal/domain/statistic"
	"github.com/minerush/backend/internal/repository"
	"github.com/minerush/backend/migration"
	"github.com/minerush/backend/pkg/crypto"
	"github.com/minerush/backend/pkg/ethutil"
	"github.com/minerush/backend/pkg/logger"
	"github.com/minerush/backend/pkg/router"
	"github.com/minerush/backend/pkg/xcontext"
	"github.com/minerush/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	redisClient xredis.Client

	userRepo    repository.UserRepository
	rushRepo    repository.RushRepository
	paymentRepo repository.PaymentRepository

	leaderboard statistic.Leaderboard

	authDomain      domain.AuthDomain
	userDomain      domain.UserDomain
	rushDomain      domain.RushDomain
	statisticDomain domain.StatisticDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) newDatabase() *gorm.DB {
	db, err := gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) loadContext() {
	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, *s.configs)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) migrateDB() {
	if err := migration.AutoMigrate(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedisClient() {
	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.rushRepo = repository.NewRushRepository()
	s.paymentRepo = repository.NewPaymentRepository()
}

func (s *srv) loadDomains() {
	paymentVerifier, err := ethutil.NewPaymentVerifier(
		s.configs.Payment.ChainRPC, s.configs.Payment.DepositAddress)
	if err != nil {
		panic(err)
	}

	s.leaderboard = statistic.New(s.rushRepo, s.redisClient)

	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.paymentRepo)
	s.rushDomain = domain.NewRushDomain(s.rushRepo, s.userRepo, s.paymentRepo,
		paymentVerifier, s.leaderboard, crypto.NewRandomizer())
	s.statisticDomain = domain.NewStatisticDomain(s.leaderboard, s.userRepo)
}
