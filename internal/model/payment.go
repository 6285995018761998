package model

import "time"

type PaymentReceipt struct {
	TxHash       string    `json:"tx_hash"`
	EventID      string    `json:"event_id"`
	TicketNumber int       `json:"ticket_number"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

type GetMyPaymentsRequest struct{}

type GetMyPaymentsResponse struct {
	Payments []PaymentReceipt `json:"payments"`
}
