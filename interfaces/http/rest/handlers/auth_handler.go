package handlers

import (
	"net/http"

	"github.com/AbhijeetAayush/My-Portfolio/pkg/auth"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/common"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves admin login and token refresh.
type AuthHandler struct {
	store  UserStore
	tokens *auth.TokenService
	logger *zap.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(store UserStore, tokens *auth.TokenService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RefreshRequest is the body for POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Login handles POST /auth/login. Unknown email and wrong password return
// the same response so the endpoint does not leak which emails exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if user == nil {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.Info("failed login attempt", zap.String("email", req.Email))
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
		return
	}

	h.store.TouchLastLogin(ctx, user.Email)

	pair, err := h.tokens.IssuePair(user.Email)
	if err != nil {
		h.logger.Error("failed to issue token pair", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue tokens")
		return
	}

	common.RespondJSON(w, http.StatusOK, pair)
}

// Refresh handles POST /auth/refresh, exchanging a valid refresh token for a
// new access/refresh pair.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	claims, err := h.tokens.Verify(req.RefreshToken, auth.TokenTypeRefresh)
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired refresh token")
		return
	}

	pair, err := h.tokens.IssuePair(claims.Email)
	if err != nil {
		h.logger.Error("failed to issue token pair", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue tokens")
		return
	}

	common.RespondJSON(w, http.StatusOK, pair)
}
