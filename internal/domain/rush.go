package domain

import (
	"context"
	"errors"
	"time"

	"github.com/minerush/backend/internal/domain/statistic"
	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/internal/model"
	"github.com/minerush/backend/internal/repository"
	"github.com/minerush/backend/pkg/crypto"
	"github.com/minerush/backend/pkg/dateutil"
	"github.com/minerush/backend/pkg/errorx"
	"github.com/minerush/backend/pkg/ethutil"
	"github.com/minerush/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RushDomain interface {
	GetEvent(context.Context, *model.GetRushEventRequest) (*model.GetRushEventResponse, error)
	ClaimTicket(context.Context, *model.ClaimTicketRequest) (*model.ClaimTicketResponse, error)

	// EnsureTodayEvent creates the event of the current day if it does not
	// exist yet. It is called by the midnight cron job.
	EnsureTodayEvent(ctx context.Context) error
}

type rushDomain struct {
	rushRepo        repository.RushRepository
	userRepo        repository.UserRepository
	paymentRepo     repository.PaymentRepository
	paymentVerifier ethutil.PaymentVerifier
	leaderboard     statistic.Leaderboard
	randomizer      crypto.Randomizer
}

func NewRushDomain(
	rushRepo repository.RushRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	paymentVerifier ethutil.PaymentVerifier,
	leaderboard statistic.Leaderboard,
	randomizer crypto.Randomizer,
) *rushDomain {
	return &rushDomain{
		rushRepo:        rushRepo,
		userRepo:        userRepo,
		paymentRepo:     paymentRepo,
		paymentVerifier: paymentVerifier,
		leaderboard:     leaderboard,
		randomizer:      randomizer,
	}
}

func (d *rushDomain) GetEvent(
	ctx context.Context, req *model.GetRushEventRequest,
) (*model.GetRushEventResponse, error) {
	now := time.Now().In(xcontext.Configs(ctx).Rush.Location())

	event, tickets, err := d.currentEvent(ctx, now)
	if err != nil {
		return nil, err
	}

	progress, err := d.progressOf(ctx, xcontext.RequestUserID(ctx), event.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetRushEventResponse{
		Event: convertRushEvent(event, tickets, progress, now),
	}, nil
}

func (d *rushDomain) ClaimTicket(
	ctx context.Context, req *model.ClaimTicketRequest,
) (*model.ClaimTicketResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	now := time.Now().In(xcontext.Configs(ctx).Rush.Location())

	event, _, err := d.currentEvent(ctx, now)
	if err != nil {
		return nil, err
	}

	progress, err := d.progressOf(ctx, userID, event.ID)
	if err != nil {
		return nil, err
	}

	if req.TicketNumber < 1 || req.TicketNumber > event.TotalTickets {
		return nil, errorx.New(errorx.NotFound, "Not found ticket")
	}

	if req.TicketNumber < progress.CurrentTicket {
		return nil, errorx.New(errorx.Unavailable, "You claimed this ticket before")
	}

	if req.TicketNumber > progress.CurrentTicket {
		return nil, errorx.New(errorx.Unavailable, "Previous tickets must be claimed first")
	}

	ticket, err := d.rushRepo.GetTicket(ctx, event.ID, req.TicketNumber)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ticket: %v", err)
		return nil, errorx.Unknown
	}

	// Paid tickets require a verified on-chain payment from the user's
	// linked wallet before any state mutates. Fail closed.
	if ticket.Kind == entity.TicketPaid {
		if req.TxHash == "" {
			return nil, errorx.New(errorx.PaymentRequired, "This ticket requires a payment of %g", ticket.Cost)
		}

		user, err := d.userRepo.GetByID(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
			return nil, errorx.Unknown
		}

		if user.WalletAddress == "" {
			return nil, errorx.New(errorx.Unavailable, "You need to link a wallet before buying tickets")
		}

		err = d.paymentVerifier.Verify(ctx, req.TxHash, ticket.Cost, user.WalletAddress)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Payment verification failed: %v", err)
			return nil, errorx.New(errorx.PaymentInvalid, "Cannot verify the payment")
		}
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	spent := 0.0
	if ticket.Kind == entity.TicketPaid {
		spent = ticket.Cost
		err := d.paymentRepo.CreateReceipt(ctx, &entity.PaymentReceipt{
			TxHash:       req.TxHash,
			UserID:       userID,
			EventID:      event.ID,
			TicketNumber: ticket.Number,
			Amount:       ticket.Cost,
		})
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot consume the payment: %v", err)
			return nil, errorx.New(errorx.Unavailable, "The payment was already used")
		}
	}

	err = d.rushRepo.AdvanceProgress(ctx, userID, event.ID, req.TicketNumber, spent)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unavailable, "You claimed this ticket before")
		}

		xcontext.Logger(ctx).Errorf("Cannot advance progress: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.IncreaseBalance(ctx, userID, ticket.Reward); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot grant the reward: %v", err)
		return nil, errorx.Unknown
	}

	bonus, err := d.rollBonus(ctx, userID, event.ID)
	if err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	// The leaderboard is a cache; a failed update must not fail the claim.
	err = d.leaderboard.ChangeRewardLeaderboard(ctx, ticket.Reward, event.ID, userID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update leaderboard: %v", err)
	}

	resp := &model.ClaimTicketResponse{
		Reward:  ticket.Reward,
		Message: claimMessage(ticket.Reward),
	}

	if bonus != nil {
		resp.Bonus = convertSurpriseBonus(bonus)
	}

	return resp, nil
}

// rollBonus grants a surprise bonus with the configured probability, capped
// by the per-event maximum. It must run inside the claim transaction.
func (d *rushDomain) rollBonus(ctx context.Context, userID, eventID string) (*surpriseBonus, error) {
	cfg := xcontext.Configs(ctx).Rush
	if d.randomizer.Intn(100) >= cfg.BonusPercent {
		return nil, nil
	}

	err := d.rushRepo.CheckAndIncreaseBonuses(ctx, userID, eventID, cfg.MaxBonuses)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The cap is reached.
			return nil, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot increase bonus counter: %v", err)
		return nil, errorx.Unknown
	}

	bonus := surpriseBonuses[d.randomizer.Intn(len(surpriseBonuses))]
	if bonus.Type == BonusCoins {
		if err := d.userRepo.IncreaseBalance(ctx, userID, bonus.Amount); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot grant the bonus coins: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &bonus, nil
}

func (d *rushDomain) EnsureTodayEvent(ctx context.Context) error {
	now := time.Now().In(xcontext.Configs(ctx).Rush.Location())
	_, _, err := d.currentEvent(ctx, now)
	return err
}

// currentEvent returns today's event and its tickets, generating them if no
// event exists yet for the current day.
func (d *rushDomain) currentEvent(
	ctx context.Context, now time.Time,
) (*entity.RushEvent, []entity.RushTicket, error) {
	dayID := dateutil.DayID(now)

	event, err := d.rushRepo.GetEventByID(ctx, dayID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, nil, errorx.Unknown
	}

	if err != nil {
		event, err = d.generateEvent(ctx, now)
		if err != nil {
			return nil, nil, err
		}
	}

	tickets, err := d.rushRepo.GetTicketsByEventID(ctx, event.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tickets: %v", err)
		return nil, nil, errorx.Unknown
	}

	return event, tickets, nil
}

func (d *rushDomain) generateEvent(ctx context.Context, now time.Time) (*entity.RushEvent, error) {
	cfg := xcontext.Configs(ctx).Rush

	// The prize pool is display-rounded to one decimal.
	prizeTenths := d.randomizer.Range(int(cfg.PrizePoolMin*10), int(cfg.PrizePoolMax*10)+1)

	event := &entity.RushEvent{
		ID:              dateutil.DayID(now),
		Theme:           rushThemes[d.randomizer.Intn(len(rushThemes))].Name,
		PrizePool:       float64(prizeTenths) / 10,
		TotalTickets:    cfg.TotalTickets,
		CountdownEndsAt: dateutil.NextMidnight(now),
	}

	tickets := make([]entity.RushTicket, 0, cfg.TotalTickets)
	for number := 1; number <= cfg.TotalTickets; number++ {
		kind, cost := ticketKindAndCost(number, cfg.TotalTickets, cfg.FinalPaidBand,
			cfg.BaseTicketCost, cfg.FinalTicketCost)

		tickets = append(tickets, entity.RushTicket{
			EventID: event.ID,
			Number:  number,
			Kind:    kind,
			Cost:    cost,
			Reward:  int64(number*100 + d.randomizer.Intn(500)),
		})
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.rushRepo.CreateEvent(ctx, event); err != nil {
		ctx = xcontext.WithRollbackDBTransaction(ctx)

		// Another request generated the event at the same time; take
		// its result.
		existing, getErr := d.rushRepo.GetEventByID(ctx, event.ID)
		if getErr != nil {
			xcontext.Logger(ctx).Errorf("Cannot create event: %v", err)
			return nil, errorx.Unknown
		}

		return existing, nil
	}

	if err := d.rushRepo.CreateTickets(ctx, tickets); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create tickets: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)
	xcontext.Logger(ctx).Infof("Generated rush event %s with theme %s", event.ID, event.Theme)
	return event, nil
}

// ticketKindAndCost applies the fixed ladder rule: the first ticket is free,
// the final band is paid at the final cost, interior even numbers are paid at
// the base cost, everything else is free.
func ticketKindAndCost(
	number, total, finalBand int, baseCost, finalCost float64,
) (entity.TicketKind, float64) {
	switch {
	case number == 1:
		return entity.TicketFree, 0
	case number > total-finalBand:
		return entity.TicketPaid, finalCost
	case number%2 == 0:
		return entity.TicketPaid, baseCost
	default:
		return entity.TicketFree, 0
	}
}

// progressOf reads the user's cursor for the given event, initializing it at
// ticket 1 on first access of the day.
func (d *rushDomain) progressOf(
	ctx context.Context, userID, eventID string,
) (*entity.RushProgress, error) {
	progress, err := d.rushRepo.GetProgress(ctx, userID, eventID)
	if err == nil {
		return progress, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get progress: %v", err)
		return nil, errorx.Unknown
	}

	progress = &entity.RushProgress{
		UserID:        userID,
		EventID:       eventID,
		CurrentTicket: 1,
	}

	if err := d.rushRepo.CreateProgress(ctx, progress); err != nil {
		// Lost an initialization race; the existing row wins.
		existing, getErr := d.rushRepo.GetProgress(ctx, userID, eventID)
		if getErr != nil {
			xcontext.Logger(ctx).Errorf("Cannot create progress: %v", err)
			return nil, errorx.Unknown
		}

		return existing, nil
	}

	return progress, nil
}
