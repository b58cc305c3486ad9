package server

// Server groups the per-resource HTTP servers behind one router.
type Server struct {
	PricingServer
	CheckoutServer
}

func NewServer(
	pricingServer PricingServer,
	checkoutServer CheckoutServer,
) Server {
	return Server{
		PricingServer:  pricingServer,
		CheckoutServer: checkoutServer,
	}
}
