package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"robux_topup/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/tiers", handler(s.getV1Tiers))
		r.Post("/quotes", handler(s.postV1Quotes))

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/links", handler(s.postV1CheckoutLinks))

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", handler(s.postV1CheckoutSessions))
				r.Get("/{id}", handler(s.getV1CheckoutSession))
				r.Put("/{id}", handler(s.putV1CheckoutSession))
				r.Post("/{id}/submit", handler(s.postV1CheckoutSessionSubmit))
				r.Post("/{id}/close", handler(s.postV1CheckoutSessionClose))
			})
		})

		r.Get("/orders", handler(s.getV1Orders))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
