package model

import "time"

type RushTheme struct {
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Icon      string `json:"icon"`
}

type RushTicket struct {
	Number   int     `json:"number"`
	Kind     string  `json:"kind"`
	Cost     float64 `json:"cost,omitempty"`
	Reward   int64   `json:"reward"`
	Claimed  bool    `json:"claimed"`
	Unlocked bool    `json:"unlocked"`
}

type TimeRemaining struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type RushProgress struct {
	CurrentTicket   int     `json:"current_ticket"`
	TotalSpent      float64 `json:"total_spent"`
	SurpriseBonuses int     `json:"surprise_bonuses"`
}

type RushEvent struct {
	ID              string        `json:"id"`
	Theme           RushTheme     `json:"theme"`
	PrizePool       float64       `json:"prize_pool"`
	TotalTickets    int           `json:"total_tickets"`
	CurrentStep     int           `json:"current_step"`
	ProgressPercent float64       `json:"progress_percent"`
	Message         string        `json:"message"`
	CountdownEndsAt time.Time     `json:"countdown_ends_at"`
	TimeRemaining   TimeRemaining `json:"time_remaining"`
	Tickets         []RushTicket  `json:"tickets"`
	Progress        RushProgress  `json:"progress"`
}

type SurpriseBonus struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Amount int64  `json:"amount,omitempty"`
	Text   string `json:"text"`
}

type GetRushEventRequest struct{}

type GetRushEventResponse struct {
	Event RushEvent `json:"event"`
}

type ClaimTicketRequest struct {
	TicketNumber int    `json:"ticket_number"`
	TxHash       string `json:"tx_hash,omitempty"`
}

type ClaimTicketResponse struct {
	Reward  int64          `json:"reward"`
	Message string         `json:"message"`
	Bonus   *SurpriseBonus `json:"bonus,omitempty"`
}
