package entity

import (
	"time"
)

// RushProgress is the per-user cursor into one event's ladder. Ticket n is
// claimed exactly when n < CurrentTicket, and the single unlocked-unclaimed
// ticket is CurrentTicket itself (or none, once the ladder is finished).
type RushProgress struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	EventID string    `gorm:"primaryKey"`
	Event   RushEvent `gorm:"foreignKey:EventID"`

	CurrentTicket   int
	TotalSpent      float64
	SurpriseBonuses int
}

// ClaimedCount returns the number of claimed tickets, the currentStep of the
// ladder.
func (p RushProgress) ClaimedCount() int {
	return p.CurrentTicket - 1
}

// Finished reports whether every ticket of the ladder has been claimed.
func (p RushProgress) Finished(totalTickets int) bool {
	return p.CurrentTicket > totalTickets
}
