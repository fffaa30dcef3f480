package httpapi

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"time"

	"bassam-order-service/internal/auth"
	"bassam-order-service/internal/config"
	"bassam-order-service/internal/http/handlers"
	"bassam-order-service/internal/ledger"
	"bassam-order-service/internal/middleware"
	"bassam-order-service/internal/ws"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(l *ledger.Ledger, provider auth.Provider, logger *zap.Logger, cfg config.Config, hub *ws.Hub) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.RequestID())

	if cfg.Env == "development" || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
			AllowCredentials: true,
			MaxAge:           300,
		}
		if cfg.Env == "development" {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool {
				return true
			}
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}
		r.Use(cors.Handler(options))
	}

	h := &handlers.Handler{Ledger: l, Auth: provider, Logger: logger, Config: cfg, Hub: hub}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/menu", h.PublicMenu)
		r.Post("/orders", h.PublicOrderCreate)
		r.Post("/reservations", h.PublicReservationCreate)
	})

	r.Post("/api/auth/login", h.Login)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminAuth(cfg.JWTSecret))

		r.Get("/orders", h.AdminOrdersList)
		r.Put("/orders/{orderId}/status", h.AdminOrderSetStatus)
		r.Delete("/orders/{orderId}", h.AdminOrderDelete)
		r.Get("/orders/{orderId}/receipt", h.AdminOrderReceiptPDF)

		r.Get("/reservations", h.AdminReservationsList)
		r.Put("/reservations/{reservationId}/status", h.AdminReservationSetStatus)
		r.Delete("/reservations/{reservationId}", h.AdminReservationDelete)

		r.Get("/menu", h.AdminMenuList)
		r.Post("/menu", h.AdminMenuCreate)
		r.Patch("/menu/{dishId}", h.AdminMenuUpdate)
		r.Delete("/menu/{dishId}", h.AdminMenuDelete)

		r.Get("/stats", h.AdminStats)
		r.Get("/reports/financial", h.AdminFinancialReportPDF)
	})

	if hub != nil {
		r.With(middleware.AdminAuth(cfg.JWTSecret)).Get("/ws/admin", hub.ServeAdmin)
	}

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not support hijacking")
	}
	return hj.Hijack()
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
