package entity

import (
	"time"
)

// PaymentReceipt records an on-chain payment that has been consumed by a
// ticket claim. The transaction hash is the primary key, so a hash can never
// pay for two claims.
type PaymentReceipt struct {
	TxHash    string `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	EventID      string
	TicketNumber int
	Amount       float64
}
