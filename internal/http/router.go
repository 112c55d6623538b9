package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/cardledger/internal/http/category"
	"github.com/MrJamesThe3rd/cardledger/internal/http/export"
	"github.com/MrJamesThe3rd/cardledger/internal/http/importcsv"
	"github.com/MrJamesThe3rd/cardledger/internal/http/payment"
)

func New(
	allowedOrigins []string,
	importV1 *importcsv.Handler,
	paymentsV1 *payment.Handler,
	categoriesV1 *category.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/import", importV1.Routes)
		r.Route("/card-types", importV1.CardTypeRoutes)

		r.Route("/payments", paymentsV1.Routes)

		r.Route("/sources", func(r chi.Router) {
			paymentsV1.SourceRoutes(r)

			r.With(middleware.AllowContentType("application/json")).Group(categoriesV1.SourceRoutes)
		})

		r.Route("/analytics", paymentsV1.AnalyticsRoutes)
		r.Get("/dashboard", paymentsV1.Dashboard)

		r.Route("/categories", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			categoriesV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)
	})

	return router
}
