package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AbhijeetAayush/My-Portfolio/domain"
	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/cache"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/common"
	apperrors "github.com/AbhijeetAayush/My-Portfolio/pkg/errors"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/utils"

	"go.uber.org/zap"
)

// PortfolioHandler serves the singleton profile document.
type PortfolioHandler struct {
	store  PortfolioStore
	cache  cache.Cache
	userID string
	logger *zap.Logger
}

// NewPortfolioHandler creates a portfolio handler.
func NewPortfolioHandler(store PortfolioStore, c cache.Cache, userID string, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		store:  store,
		cache:  c,
		userID: userID,
		logger: logger,
	}
}

// Get handles GET /portfolio. An unconfigured portfolio is served as an
// empty document, never a 404.
func (h *PortfolioHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.cache.Get(ctx, cache.PortfolioKey); ok {
		common.RespondJSON(w, http.StatusOK, json.RawMessage(cached))
		return
	}

	portfolio, err := h.store.GetPortfolio(ctx, h.userID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if portfolio == nil {
		portfolio = domain.EmptyPortfolio(h.userID)
	}

	if raw, err := json.Marshal(portfolio); err == nil {
		h.cache.Set(ctx, cache.PortfolioKey, raw, cache.PortfolioTTL)
	}

	common.RespondJSON(w, http.StatusOK, portfolio)
}

// Update handles PUT /portfolio (admin).
func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patch domain.PortfolioPatch
	if err := common.ParseJSONBody(r, &patch, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(patch); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	portfolio, err := h.store.UpsertPortfolio(ctx, h.userID, patch)
	if err != nil {
		respondAppError(w, err)
		return
	}

	cache.InvalidatePortfolio(ctx, h.cache)

	common.RespondJSON(w, http.StatusOK, portfolio)
}

// respondAppError maps a store error onto the response envelope.
func respondAppError(w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		common.RespondError(w, appErr.HTTPStatus, string(appErr.Type), appErr.Message)
		return
	}
	common.RespondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
