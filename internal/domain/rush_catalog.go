package domain

import (
	"github.com/minerush/backend/internal/entity"
	"github.com/minerush/backend/internal/model"
	"github.com/minerush/backend/pkg/enum"
)

type BonusType string

var (
	BonusCoins      = enum.New(BonusType("coins"))
	BonusExtraSpin  = enum.New(BonusType("extra_spin"))
	BonusVipAccess  = enum.New(BonusType("vip_access"))
	BonusFreeTicket = enum.New(BonusType("free_ticket"))
)

// rushThemes is the cosmetic palette one event theme is drawn from. Themes
// have no behavioral effect.
var rushThemes = []model.RushTheme{
	{Name: "gold_rush", Primary: "#f5b942", Secondary: "#7a5210", Icon: "pickaxe"},
	{Name: "diamond_fever", Primary: "#7fd4f0", Secondary: "#1d5b73", Icon: "gem"},
	{Name: "lava_mine", Primary: "#f0603c", Secondary: "#6e1a08", Icon: "flame"},
	{Name: "crystal_cave", Primary: "#b07ff0", Secondary: "#3c1d73", Icon: "crystal"},
	{Name: "deep_core", Primary: "#57e389", Secondary: "#0f5132", Icon: "drill"},
}

type surpriseBonus struct {
	ID     string
	Type   BonusType
	Amount int64
	Text   string
}

// surpriseBonuses is the fixed catalog a bonus is drawn from. Entries are
// immutable; only coins-type bonuses carry a balance amount.
var surpriseBonuses = []surpriseBonus{
	{ID: "bonus-coins-small", Type: BonusCoins, Amount: 500, Text: "Bonus coins dropped into your balance!"},
	{ID: "bonus-coins-big", Type: BonusCoins, Amount: 2000, Text: "A big pile of bonus coins!"},
	{ID: "bonus-extra-spin", Type: BonusExtraSpin, Text: "You won an extra spin!"},
	{ID: "bonus-vip-access", Type: BonusVipAccess, Text: "VIP access unlocked for today!"},
	{ID: "bonus-free-ticket", Type: BonusFreeTicket, Text: "Your next paid ticket is free!"},
}

var genericMessages = []string{
	"Keep digging, the prize pool is waiting!",
	"Every ticket brings you closer to the top.",
	"The mine never sleeps. Neither do you!",
	"Steady hands win the rush.",
}

// eventMessage picks the headline shown with the event.
func eventMessage(progress *entity.RushProgress, total int) string {
	if progress.Finished(total) {
		return "You cleared the whole ladder. See you tomorrow!"
	}

	return motivationalMessage(progress.ClaimedCount(), total)
}

// motivationalMessage tiers the message by how many tickets remain unclaimed.
func motivationalMessage(claimed, total int) string {
	remaining := total - claimed
	switch {
	case remaining <= 5:
		return "Final sprint! Only a few tickets left!"
	case remaining <= 10:
		return "Almost there, the top of the ladder is in sight!"
	default:
		return genericMessages[claimed%len(genericMessages)]
	}
}
