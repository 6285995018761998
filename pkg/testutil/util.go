package testutil

import (
	"context"
	"time"

	"github.com/minerush/backend/config"
	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/pkg/authenticator"
	"github.com/minerush/backend/pkg/logger"
	"github.com/minerush/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
			Telegram: config.TelegramConfigs{
				BotToken: "123456:test-bot-token",
			},
		},
		Rush: config.RushConfigs{
			Timezone:        "UTC",
			TotalTickets:    50,
			BaseTicketCost:  0.5,
			FinalTicketCost: 2.5,
			FinalPaidBand:   2,
			PrizePoolMin:    5,
			PrizePoolMax:    25,
			BonusPercent:    20,
			MaxBonuses:      5,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(ctx context.Context, userID string) context.Context {
	return xcontext.WithRequestUserID(ctx, userID)
}
