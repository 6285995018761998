package main

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/minerush/backend/config"
	"github.com/urfave/cli/v2"
)

func defaultConfigs() *config.Configs {
	return &config.Configs{
		Env: "local",
		ApiServer: config.ServerConfigs{
			Host: "0.0.0.0",
			Port: "8080",
		},
		Database: config.DatabaseConfigs{
			Host:     "127.0.0.1",
			Port:     "3306",
			Database: "minerush",
			User:     "root",
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
		},
		Redis: config.RedisConfigs{
			Addr: "127.0.0.1:6379",
		},
		Payment: config.PaymentConfigs{
			ChainRPC:       "http://127.0.0.1:8545",
			DepositAddress: "0x0000000000000000000000000000000000000000",
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
}

func (s *srv) loadConfig(ct *cli.Context) error {
	configs := defaultConfigs()

	if path := ct.String("config"); path != "" {
		if _, err := toml.DecodeFile(path, configs); err != nil {
			return err
		}
	}

	// Secrets always come from the environment.
	if v := os.Getenv("MINERUSH_TOKEN_SECRET"); v != "" {
		configs.Auth.TokenSecret = v
	}
	if v := os.Getenv("MINERUSH_BOT_TOKEN"); v != "" {
		configs.Auth.Telegram.BotToken = v
	}
	if v := os.Getenv("MINERUSH_DB_PASSWORD"); v != "" {
		configs.Database.Password = v
	}

	s.configs = configs
	return nil
}
