package entity

type User struct {
	Base

	TelegramID    int64 `gorm:"unique"`
	Name          string
	WalletAddress string

	// Balance is the spendable mined-coin balance.
	Balance int64
}
