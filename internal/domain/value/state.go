package value

// CheckoutState is the step of the checkout flow a session is in.
type CheckoutState string

const (
	StateIdle            CheckoutState = "Idle"
	StateSubmitting      CheckoutState = "Submitting"
	StateAwaitingPayment CheckoutState = "AwaitingPayment"
	StateClosed          CheckoutState = "Closed"
)

func (s CheckoutState) String() string {
	return string(s)
}

type OrderStatus string

const OrderPending OrderStatus = "Pending"

func (s OrderStatus) String() string {
	return string(s)
}
