package testutil

import (
	"context"

	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/internal/repository"
)

var (
	User1 = entity.User{
		Base:          entity.Base{ID: "user1"},
		TelegramID:    111111,
		Name:          "miner_one",
		WalletAddress: "0x1111111111111111111111111111111111111111",
	}

	User2 = entity.User{
		Base:       entity.Base{ID: "user2"},
		TelegramID: 222222,
		Name:       "miner_two",
	}
)

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
}

func InsertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{User1, User2} {
		user := user
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}
