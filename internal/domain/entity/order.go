package entity

import (
	"time"

	"robux_topup/internal/domain/value"
)

type Order struct {
	ID              value.OrderID     `json:"id"`
	Username        string            `json:"username"`
	RobuxAmount     int64             `json:"robux_amount"`
	GamepassPrice   int64             `json:"gamepass_price"`
	GamepassURL     string            `json:"gamepass_url"`
	DiscordUsername string            `json:"discord_username,omitempty"`
	TotalPayment    int64             `json:"total_payment"`
	Status          value.OrderStatus `json:"status"`
	PaymentMethod   string            `json:"payment_method"`
	PaymentCode     string            `json:"payment_code"`
	CreatedAt       time.Time         `json:"created_at"`
	// ExpiresAt is shown to the buyer only, nothing enforces it.
	ExpiresAt time.Time `json:"expires_at"`
}
