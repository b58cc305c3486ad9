package rest

import "time"

// QuoteRequest asks for the price of a Robux amount.
type QuoteRequest struct {
	RobuxAmount int64 `json:"robuxAmount" validate:"required,gt=0"`
}

// TopUpForm is the buyer's input on the top-up page.
type TopUpForm struct {
	Username        string `json:"username" validate:"required,min=3"`
	RobuxAmount     int64  `json:"robuxAmount" validate:"required,gt=0"`
	GamepassURL     string `json:"gamepassUrl" validate:"required,url"`
	DiscordUsername string `json:"discordUsername,omitempty"`
	// Coupon is accepted but no discount is applied.
	Coupon string `json:"coupon,omitempty"`
}

// SessionForm edits an open checkout. Username and game pass url are checked
// on submit.
type SessionForm struct {
	Username        string `json:"username"`
	RobuxAmount     int64  `json:"robuxAmount" validate:"required,gt=0"`
	GamepassURL     string `json:"gamepassUrl"`
	DiscordUsername string `json:"discordUsername,omitempty"`
	Coupon          string `json:"coupon,omitempty"`
}

// Quote is the price breakdown for a Robux amount.
type Quote struct {
	RobuxAmount       int64  `json:"robuxAmount"`
	FeeRate           string `json:"feeRate"`
	GamepassPrice     int64  `json:"gamepassPrice"`
	FeeAmount         int64  `json:"feeAmount"`
	UnitPrice         string `json:"unitPrice"`
	TotalPayment      int64  `json:"totalPayment"`
	Discount          int64  `json:"discount"`
	AdminFee          int64  `json:"adminFee"`
	TierThreshold     int64  `json:"tierThreshold"`
	ExactTier         bool   `json:"exactTier"`
	RobuxAmountText   string `json:"robuxAmountText"`
	GamepassPriceText string `json:"gamepassPriceText"`
	TotalPaymentText  string `json:"totalPaymentText"`
}

// Tier is one quick-select preset.
type Tier struct {
	RobuxAmount     int64  `json:"robuxAmount"`
	Price           int64  `json:"price"`
	GamepassPrice   int64  `json:"gamepassPrice"`
	DiscountLabel   string `json:"discountLabel,omitempty"`
	RobuxAmountText string `json:"robuxAmountText"`
	PriceText       string `json:"priceText"`
}

type TierList struct {
	MinAmount int64  `json:"minAmount"`
	MaxAmount int64  `json:"maxAmount"`
	FeeRate   string `json:"feeRate"`
	Tiers     []Tier `json:"tiers"`
}

// CheckoutLink is the handoff from the top-up form to checkout.
type CheckoutLink struct {
	URL   string `json:"url"`
	Quote Quote  `json:"quote"`
}

type CheckoutParams struct {
	Username        string `json:"username"`
	RobuxAmount     int64  `json:"robuxAmount"`
	GamepassPrice   int64  `json:"gamepassPrice"`
	GamepassURL     string `json:"gamepassUrl"`
	DiscordUsername string `json:"discordUsername,omitempty"`
	TotalPayment    int64  `json:"totalPayment"`
}

type Order struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	RobuxAmount      int64     `json:"robuxAmount"`
	GamepassPrice    int64     `json:"gamepassPrice"`
	GamepassURL      string    `json:"gamepassUrl"`
	DiscordUsername  string    `json:"discordUsername,omitempty"`
	TotalPayment     int64     `json:"totalPayment"`
	TotalPaymentText string    `json:"totalPaymentText"`
	Status           string    `json:"status"`
	PaymentMethod    string    `json:"paymentMethod"`
	PaymentCode      string    `json:"paymentCode"`
	CreatedAt        time.Time `json:"createdAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

type Session struct {
	ID        string         `json:"id"`
	State     string         `json:"state"`
	Params    CheckoutParams `json:"params"`
	Quote     *Quote         `json:"quote,omitempty"`
	Order     *Order         `json:"order,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

// Error is the body of every failed request.
type Error struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	SupportID string    `json:"supportId"`
}

type ErrorCode string
