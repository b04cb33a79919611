package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type PriceChangeResponse struct {
	Route              string  `json:"route"`
	CurrentPriceCents  int     `json:"current_price_cents"`
	PreviousPriceCents *int    `json:"previous_price_cents,omitempty"`
	ChangePercent      float64 `json:"change_percent"`
	Significant        bool    `json:"significant"`
}
