package handlers

import (
	"net/http"

	"bassam-order-service/internal/ledger"
	"bassam-order-service/pkg/response"

	"go.uber.org/zap"
)

func (h *Handler) AdminMenuList(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.Ledger.Menu(r.Context()))
}

type dishCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

// AdminMenuCreate adds a dish. An empty body is allowed and produces the
// placeholder the editor then fills in.
func (h *Handler) AdminMenuCreate(w http.ResponseWriter, r *http.Request) {
	var req dishCreateRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if req.Name == "" {
		req.Name = "Nouveau Plat"
	}

	dish, err := h.Ledger.CreateDish(r.Context(), ledger.DishDraft{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    ledger.Category(req.Category),
		Image:       req.Image,
	})
	if err != nil {
		switch err {
		case ledger.ErrNegativePrice, ledger.ErrUnknownCategory:
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			h.Logger.Error("dish create failed", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save dish")
		}
		return
	}

	h.publish("menu.created", dish)
	response.Created(w, dish)
}

type dishUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
}

// AdminMenuUpdate merges the provided fields into the dish; absent fields
// keep their prior value.
func (h *Handler) AdminMenuUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := readPathString(r, "dishId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Dish ID is required")
		return
	}

	var req dishUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	upd := ledger.DishUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	}
	if req.Category != nil {
		category := ledger.Category(*req.Category)
		upd.Category = &category
	}

	menu, err := h.Ledger.UpdateDish(r.Context(), id, upd)
	if err != nil {
		switch err {
		case ledger.ErrNegativePrice, ledger.ErrUnknownCategory:
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			h.Logger.Error("dish update failed", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update dish")
		}
		return
	}

	h.publish("menu.updated", map[string]string{"id": id})
	response.Success(w, menu)
}

func (h *Handler) AdminMenuDelete(w http.ResponseWriter, r *http.Request) {
	id, err := readPathString(r, "dishId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Dish ID is required")
		return
	}

	menu, err := h.Ledger.DeleteDish(r.Context(), id)
	if err != nil {
		h.Logger.Error("dish delete failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete dish")
		return
	}

	h.publish("menu.deleted", map[string]string{"id": id})
	response.Success(w, menu)
}
