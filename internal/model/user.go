package model

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	WalletAddress string `json:"wallet_address,omitempty"`
	Balance       int64  `json:"balance"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}

type LinkWalletRequest struct {
	WalletAddress string `json:"wallet_address"`
}

type LinkWalletResponse struct {
	User User `json:"user"`
}
