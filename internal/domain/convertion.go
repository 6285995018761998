package domain

import (
	"fmt"
	"time"

	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/internal/model"
	"github.com/minerush/backend/pkg/dateutil"
	"github.com/minerush/backend/pkg/enum"
)

func convertUser(user *entity.User) model.User {
	if user == nil {
		return model.User{}
	}

	return model.User{
		ID:            user.ID,
		Name:          user.Name,
		WalletAddress: user.WalletAddress,
		Balance:       user.Balance,
	}
}

func convertRushTheme(name string) model.RushTheme {
	for _, theme := range rushThemes {
		if theme.Name == name {
			return theme
		}
	}

	return model.RushTheme{Name: name}
}

// convertRushEvent renders the event through the eyes of one user: ticket
// claimed/unlocked flags, progress, countdown, and the motivational message
// all depend on the user's cursor.
func convertRushEvent(
	event *entity.RushEvent,
	tickets []entity.RushTicket,
	progress *entity.RushProgress,
	now time.Time,
) model.RushEvent {
	clientTickets := make([]model.RushTicket, 0, len(tickets))
	for _, ticket := range tickets {
		clientTickets = append(clientTickets, model.RushTicket{
			Number:   ticket.Number,
			Kind:     enum.ToString(ticket.Kind),
			Cost:     ticket.Cost,
			Reward:   ticket.Reward,
			Claimed:  ticket.Number < progress.CurrentTicket,
			Unlocked: ticket.Number <= progress.CurrentTicket,
		})
	}

	hours, minutes, seconds := dateutil.Remaining(now, event.CountdownEndsAt)
	claimed := progress.ClaimedCount()

	percent := 0.0
	if event.TotalTickets > 0 {
		percent = float64(claimed) / float64(event.TotalTickets) * 100
	}

	return model.RushEvent{
		ID:              event.ID,
		Theme:           convertRushTheme(event.Theme),
		PrizePool:       event.PrizePool,
		TotalTickets:    event.TotalTickets,
		CurrentStep:     claimed,
		ProgressPercent: percent,
		Message:         eventMessage(progress, event.TotalTickets),
		CountdownEndsAt: event.CountdownEndsAt,
		TimeRemaining: model.TimeRemaining{
			Hours:   hours,
			Minutes: minutes,
			Seconds: seconds,
		},
		Tickets: clientTickets,
		Progress: model.RushProgress{
			CurrentTicket:   progress.CurrentTicket,
			TotalSpent:      progress.TotalSpent,
			SurpriseBonuses: progress.SurpriseBonuses,
		},
	}
}

func convertSurpriseBonus(bonus *surpriseBonus) *model.SurpriseBonus {
	return &model.SurpriseBonus{
		ID:     bonus.ID,
		Type:   enum.ToString(bonus.Type),
		Amount: bonus.Amount,
		Text:   bonus.Text,
	}
}

func convertPaymentReceipt(receipt entity.PaymentReceipt) model.PaymentReceipt {
	return model.PaymentReceipt{
		TxHash:       receipt.TxHash,
		EventID:      receipt.EventID,
		TicketNumber: receipt.TicketNumber,
		Amount:       receipt.Amount,
		CreatedAt:    receipt.CreatedAt,
	}
}

func claimMessage(reward int64) string {
	return fmt.Sprintf("You received %d coins", reward)
}
