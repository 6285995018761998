package entity

import (
	"time"

	"github.com/minerush/backend/pkg/enum"
)

type TicketKind string

var (
	TicketFree = enum.New(TicketKind("free"))
	TicketPaid = enum.New(TicketKind("paid"))
)

// RushEvent is one day's instance of the ticket ladder. Its primary key is
// the calendar-day id of the reset timezone, so at most one event exists per
// day.
type RushEvent struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Theme           string
	PrizePool       float64
	TotalTickets    int
	CountdownEndsAt time.Time
}

// RushTicket is one rung of an event's ladder. Tickets are a per-day shared
// template; per-user claim state lives in RushProgress.
type RushTicket struct {
	EventID string    `gorm:"primaryKey"`
	Event   RushEvent `gorm:"foreignKey:EventID"`

	Number int `gorm:"primaryKey"`

	Kind   TicketKind
	Cost   float64
	Reward int64
}
