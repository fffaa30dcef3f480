package handlers

import (
	"net/http"
	"strings"
	"time"

	"bassam-order-service/internal/auth"
	"bassam-order-service/pkg/response"

	"go.uber.org/zap"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the manager credentials and issues the admin token. The
// error message stays generic on purpose.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if !h.Auth.Verify(req.Username, req.Password) {
		h.Logger.Warn("admin login rejected", zap.String("username", req.Username))
		response.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Identifiants incorrects")
		return
	}

	ttl := time.Duration(h.Config.JWTExpirySeconds) * time.Second
	token, err := auth.IssueAdminToken(req.Username, h.Config.JWTSecret, ttl)
	if err != nil {
		h.Logger.Error("token issue failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create session")
		return
	}

	response.Success(w, map[string]any{
		"token":     token,
		"expiresIn": h.Config.JWTExpirySeconds,
	})
}
