package model

type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TelegramLoginRequest struct {
	InitData string `json:"init_data"`
}

type TelegramLoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
