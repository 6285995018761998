package domain

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/internal/model"
	"github.com/minerush/backend/internal/repository"
	"github.com/minerush/backend/pkg/crypto"
	"github.com/minerush/backend/pkg/errorx"
	"github.com/minerush/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// initDataMaxAge bounds how old a Telegram login payload may be.
const initDataMaxAge = 24 * time.Hour

type AuthDomain interface {
	TelegramLogin(context.Context, *model.TelegramLoginRequest) (*model.TelegramLoginResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
}

func NewAuthDomain(userRepo repository.UserRepository) *authDomain {
	return &authDomain{userRepo: userRepo}
}

func (d *authDomain) TelegramLogin(
	ctx context.Context, req *model.TelegramLoginRequest,
) (*model.TelegramLoginResponse, error) {
	botToken := xcontext.Configs(ctx).Auth.Telegram.BotToken

	tgUser, err := verifyInitData(req.InitData, botToken, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid telegram init data: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid telegram login data")
	}

	user, err := d.userRepo.GetByTelegramID(ctx, tgUser.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		user = &entity.User{
			Base:       entity.Base{ID: uuid.NewString()},
			TelegramID: tgUser.ID,
			Name:       tgUser.displayName(),
		}

		if err := d.userRepo.Create(ctx, user); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
			return nil, errorx.Unknown
		}
	}

	if name := tgUser.displayName(); name != "" && name != user.Name {
		user.Name = name
		err := d.userRepo.UpdateByID(ctx, user.ID, &entity.User{Name: name})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update user name: %v", err)
			return nil, errorx.Unknown
		}
	}

	cfg := xcontext.Configs(ctx).Auth
	token, err := xcontext.TokenEngine(ctx).Generate(
		cfg.AccessToken.Expiration,
		model.AccessToken{ID: user.ID, Name: user.Name},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.TelegramLoginResponse{
		AccessToken: token,
		User:        convertUser(user),
	}, nil
}

type telegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

func (u telegramUser) displayName() string {
	if u.Username != "" {
		return u.Username
	}

	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// verifyInitData checks the signature of a Telegram WebApp initData payload
// and returns the embedded user.
func verifyInitData(initData, botToken string, now time.Time) (*telegramUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, err
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, errors.New("missing hash")
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		if key != "hash" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("%s=%s", key, values.Get(key)))
	}

	secret := crypto.HMACBytes(sha256.New, []byte(botToken), []byte("WebAppData"))
	wantHash := crypto.HMAC(sha256.New, []byte(strings.Join(lines, "\n")), secret)
	if !hmac.Equal([]byte(gotHash), []byte(wantHash)) {
		return nil, errors.New("mismatched hash")
	}

	authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid auth_date")
	}

	if now.Sub(time.Unix(authDate, 0)) > initDataMaxAge {
		return nil, errors.New("expired init data")
	}

	var user telegramUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil {
		return nil, errors.New("invalid user payload")
	}

	return &user, nil
}
