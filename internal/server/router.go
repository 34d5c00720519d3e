package server

import (
	"net/http"
	"time"

	"oldenfyre/internal/catalog"
	checkoutcontroller "oldenfyre/internal/checkout/controller"
	"oldenfyre/internal/preferences"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter wires the API surface. The storefront is served from a
// separate origin, so CORS is open for the methods the form uses.
func NewRouter(
	catalogCtrl *catalog.Controller,
	checkoutCtrl *checkoutcontroller.CheckoutController,
	preferencesCtrl *preferences.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogCtrl.HandleListProducts)
		r.Get("/products/{code}", catalogCtrl.HandleGetProduct)

		r.Post("/orders", checkoutCtrl.PlaceOrder)
		r.Get("/orders/{code}", checkoutCtrl.GetConfirmation)
		r.Get("/checkout/quote", checkoutCtrl.GetQuote)

		r.Get("/preferences/theme", preferencesCtrl.GetTheme)
		r.Put("/preferences/theme", preferencesCtrl.PutTheme)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}
