package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string

	ApiServer ServerConfigs
	Database  DatabaseConfigs
	Auth      AuthConfigs
	Redis     RedisConfigs
	Payment   PaymentConfigs
	Rush      RushConfigs
}

type ServerConfigs struct {
	Host string
	Port string

	AllowCORS []string
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type AuthConfigs struct {
	TokenSecret string
	AccessToken TokenConfigs
	Telegram    TelegramConfigs
}

type TokenConfigs struct {
	Name       string
	Expiration time.Duration
}

type TelegramConfigs struct {
	BotToken string
}

type RedisConfigs struct {
	Addr string
}

type PaymentConfigs struct {
	// RPC endpoint of the chain where ticket payments are settled.
	ChainRPC string

	// DepositAddress is the wallet every ticket payment must be sent to.
	DepositAddress string
}

type RushConfigs struct {
	// Timezone of the daily reset boundary. Events roll over at local
	// midnight of this zone.
	Timezone string

	TotalTickets    int
	BaseTicketCost  float64
	FinalTicketCost float64

	// FinalPaidBand is the number of trailing tickets sold at the final
	// cost.
	FinalPaidBand int

	PrizePoolMin float64
	PrizePoolMax float64

	// BonusPercent is the probability (in percent) of rolling a surprise
	// bonus on a successful claim.
	BonusPercent int
	MaxBonuses   int
}

// Location resolves the configured reset timezone, falling back to UTC on an
// empty or invalid name.
func (r RushConfigs) Location() *time.Location {
	if r.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
