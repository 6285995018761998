package repository

import (
	"context"

	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RushRepository interface {
	// Event
	CreateEvent(ctx context.Context, event *entity.RushEvent) error
	CreateTickets(ctx context.Context, tickets []entity.RushTicket) error
	GetEventByID(ctx context.Context, eventID string) (*entity.RushEvent, error)
	GetTicketsByEventID(ctx context.Context, eventID string) ([]entity.RushTicket, error)
	GetTicket(ctx context.Context, eventID string, number int) (*entity.RushTicket, error)

	// Progress
	CreateProgress(ctx context.Context, progress *entity.RushProgress) error
	GetProgress(ctx context.Context, userID, eventID string) (*entity.RushProgress, error)
	AdvanceProgress(ctx context.Context, userID, eventID string, fromTicket int, spent float64) error
	CheckAndIncreaseBonuses(ctx context.Context, userID, eventID string, max int) error

	// Statistic
	GetRewardTotalsByEventID(ctx context.Context, eventID string) ([]UserRewardTotal, error)
}

type UserRewardTotal struct {
	UserID string
	Reward int64
}

type rushRepository struct{}

func NewRushRepository() *rushRepository {
	return &rushRepository{}
}

func (r *rushRepository) CreateEvent(ctx context.Context, event *entity.RushEvent) error {
	return xcontext.DB(ctx).Create(event).Error
}

func (r *rushRepository) CreateTickets(ctx context.Context, tickets []entity.RushTicket) error {
	return xcontext.DB(ctx).Create(tickets).Error
}

func (r *rushRepository) GetEventByID(ctx context.Context, eventID string) (*entity.RushEvent, error) {
	var result entity.RushEvent
	if err := xcontext.DB(ctx).Take(&result, "id=?", eventID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *rushRepository) GetTicketsByEventID(ctx context.Context, eventID string) ([]entity.RushTicket, error) {
	var result []entity.RushTicket
	err := xcontext.DB(ctx).Where("event_id=?", eventID).Order("number ASC").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *rushRepository) GetTicket(ctx context.Context, eventID string, number int) (*entity.RushTicket, error) {
	var result entity.RushTicket
	err := xcontext.DB(ctx).Take(&result, "event_id=? AND number=?", eventID, number).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *rushRepository) CreateProgress(ctx context.Context, progress *entity.RushProgress) error {
	return xcontext.DB(ctx).Create(progress).Error
}

func (r *rushRepository) GetProgress(ctx context.Context, userID, eventID string) (*entity.RushProgress, error) {
	var result entity.RushProgress
	err := xcontext.DB(ctx).Take(&result, "user_id=? AND event_id=?", userID, eventID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// AdvanceProgress moves the cursor from fromTicket to the next one. The guard
// on current_ticket makes concurrent claims of the same ticket mutually
// exclusive; the loser observes gorm.ErrRecordNotFound.
func (r *rushRepository) AdvanceProgress(
	ctx context.Context, userID, eventID string, fromTicket int, spent float64,
) error {
	tx := xcontext.DB(ctx).Model(&entity.RushProgress{}).
		Where("user_id=? AND event_id=? AND current_ticket=?", userID, eventID, fromTicket).
		Updates(map[string]any{
			"current_ticket": fromTicket + 1,
			"total_spent":    gorm.Expr("total_spent+?", spent),
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetRewardTotalsByEventID sums the rewards of all claimed tickets per user
// of one event. It is the database source of truth behind the redis
// leaderboard.
func (r *rushRepository) GetRewardTotalsByEventID(
	ctx context.Context, eventID string,
) ([]UserRewardTotal, error) {
	var result []UserRewardTotal
	err := xcontext.DB(ctx).Model(&entity.RushProgress{}).
		Select("rush_progresses.user_id AS user_id, SUM(rush_tickets.reward) AS reward").
		Joins("JOIN rush_tickets ON rush_tickets.event_id=rush_progresses.event_id "+
			"AND rush_tickets.number < rush_progresses.current_ticket").
		Where("rush_progresses.event_id=?", eventID).
		Group("rush_progresses.user_id").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CheckAndIncreaseBonuses increments the surprise bonus counter only while it
// is below max.
func (r *rushRepository) CheckAndIncreaseBonuses(
	ctx context.Context, userID, eventID string, max int,
) error {
	tx := xcontext.DB(ctx).Model(&entity.RushProgress{}).
		Where("user_id=? AND event_id=? AND surprise_bonuses < ?", userID, eventID, max).
		Update("surprise_bonuses", gorm.Expr("surprise_bonuses+?", 1))
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
