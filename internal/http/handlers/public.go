package handlers

import (
	"net/http"
	"strings"

	"bassam-order-service/internal/ledger"
	"bassam-order-service/internal/whatsapp"
	"bassam-order-service/pkg/response"

	"go.uber.org/zap"
)

// PublicMenu returns the card, optionally filtered by category.
func (h *Handler) PublicMenu(w http.ResponseWriter, r *http.Request) {
	menu := h.Ledger.Menu(r.Context())

	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category != "" && category != "tous" {
		filtered := make([]ledger.Dish, 0, len(menu))
		for _, d := range menu {
			if string(d.Category) == category {
				filtered = append(filtered, d)
			}
		}
		menu = filtered
	}

	response.Success(w, menu)
}

type publicOrderRequest struct {
	DishID        string `json:"dishId"`
	Quantity      int    `json:"quantity"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	IsDelivery    bool   `json:"isDelivery"`
	Address       string `json:"address"`
	TableNumber   string `json:"tableNumber"`
}

// PublicOrderCreate records the order and returns the WhatsApp hand-off.
// The dish name and price are snapshotted from the menu here, at order
// time; the stored order never references the menu again.
func (h *Handler) PublicOrderCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req publicOrderRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Customer name is required")
		return
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Customer phone is required")
		return
	}
	if req.IsDelivery && strings.TrimSpace(req.Address) == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Delivery address is required")
		return
	}

	var dish *ledger.Dish
	for _, d := range h.Ledger.Menu(ctx) {
		if d.ID == req.DishID {
			dish = &d
			break
		}
	}
	if dish == nil {
		response.Error(w, http.StatusNotFound, "DISH_NOT_FOUND", "Dish not found on the menu")
		return
	}

	order, err := h.Ledger.CreateOrder(ctx, ledger.OrderDraft{
		DishName:      dish.Name,
		Price:         dish.Price,
		Quantity:      req.Quantity,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		IsDelivery:    req.IsDelivery,
		Address:       strings.TrimSpace(req.Address),
		TableNumber:   strings.TrimSpace(req.TableNumber),
	})
	if err != nil {
		switch err {
		case ledger.ErrInvalidQuantity, ledger.ErrNegativePrice:
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			h.Logger.Error("order create failed", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save order")
		}
		return
	}

	h.publish("order.created", order)

	total := order.LineTotal()
	if order.IsDelivery {
		total += h.Config.DeliveryFee
	}
	message := whatsapp.OrderMessage(order, h.Config.RestaurantName, total, h.Config.Currency)

	response.Created(w, map[string]any{
		"order": order,
		"total": total,
		"whatsapp": map[string]string{
			"message": message,
			"url":     whatsapp.Link(h.Config.RestaurantPhone, message),
		},
	})
}

type publicReservationRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Guests  string `json:"guests"`
	Message string `json:"message"`
}

// PublicReservationCreate records the booking request and returns the
// WhatsApp hand-off.
func (h *Handler) PublicReservationCreate(w http.ResponseWriter, r *http.Request) {
	var req publicReservationRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Date) == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Name, phone and date are required")
		return
	}
	if strings.TrimSpace(req.Guests) == "" {
		req.Guests = "2 personnes"
	}

	res, err := h.Ledger.CreateReservation(r.Context(), ledger.ReservationDraft{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Date:    strings.TrimSpace(req.Date),
		Guests:  strings.TrimSpace(req.Guests),
		Message: strings.TrimSpace(req.Message),
	})
	if err != nil {
		h.Logger.Error("reservation create failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save reservation")
		return
	}

	h.publish("reservation.created", res)

	message := whatsapp.ReservationMessage(res, h.Config.RestaurantName)
	response.Created(w, map[string]any{
		"reservation": res,
		"whatsapp": map[string]string{
			"message": message,
			"url":     whatsapp.Link(h.Config.RestaurantPhone, message),
		},
	})
}
