package config

import "time"

// Session store backends.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Checkout struct {
	SubmitDelay    time.Duration `env:"CHECKOUT_SUBMIT_DELAY" envDefault:"2s"`
	PaymentExpiry  time.Duration `env:"CHECKOUT_PAYMENT_EXPIRY" envDefault:"5m"`
	OrderIDPrefix  string        `env:"CHECKOUT_ORDER_PREFIX" envDefault:"UDN"`
	PaymentCode    string        `env:"CHECKOUT_PAYMENT_CODE" envDefault:"00020101021126570011ID.DANA.WWW"`
	BaseURL        string        `env:"CHECKOUT_BASE_URL" envDefault:"/checkout"`
	SessionTTL     time.Duration `env:"CHECKOUT_SESSION_TTL" envDefault:"1h"`
	OrderRetention time.Duration `env:"CHECKOUT_ORDER_RETENTION" envDefault:"24h"`
	SessionStore   string        `env:"SESSION_STORE" envDefault:"memory"`
}
