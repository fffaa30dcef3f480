package handlers

import (
	"bassam-order-service/internal/auth"
	"bassam-order-service/internal/config"
	"bassam-order-service/internal/ledger"
	"bassam-order-service/internal/report"
	"bassam-order-service/internal/ws"

	"go.uber.org/zap"
)

type Handler struct {
	Ledger *ledger.Ledger
	Auth   auth.Provider
	Logger *zap.Logger
	Config config.Config
	Hub    *ws.Hub
}

func (h *Handler) restaurant() report.Restaurant {
	return report.Restaurant{
		Name:     h.Config.RestaurantName,
		Location: h.Config.RestaurantLocation,
		Phone:    h.Config.RestaurantPhone,
		Currency: h.Config.Currency,
	}
}

// publish is a nil-safe event broadcast; the hub is optional in tests.
func (h *Handler) publish(eventType string, data any) {
	if h.Hub != nil {
		h.Hub.Publish(eventType, data)
	}
}
