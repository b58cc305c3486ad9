package entity

import (
	"time"

	"robux_topup/internal/domain/value"
)

// CheckoutParams is what the top-up form hands over to the checkout view.
type CheckoutParams struct {
	Username        string `json:"username"`
	RobuxAmount     int64  `json:"robux_amount"`
	GamepassPrice   int64  `json:"gamepass_price"`
	GamepassURL     string `json:"gamepass_url"`
	DiscordUsername string `json:"discord_username,omitempty"`
	TotalPayment    int64  `json:"total_payment"`
}

func (p CheckoutParams) IsZero() bool {
	return p == CheckoutParams{}
}

// Session is the state of a single checkout interaction.
type Session struct {
	ID        value.SessionID     `json:"id"`
	State     value.CheckoutState `json:"state"`
	Params    CheckoutParams      `json:"params"`
	Quote     *Quote              `json:"quote,omitempty"`
	Order     *Order              `json:"order,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
