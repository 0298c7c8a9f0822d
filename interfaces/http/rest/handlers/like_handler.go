package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/cache"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LikeHandler serves like counts and anonymous like submission.
type LikeHandler struct {
	store  LikeStore
	cache  cache.Cache
	logger *zap.Logger
}

// NewLikeHandler creates a like handler.
func NewLikeHandler(store LikeStore, c cache.Cache, logger *zap.Logger) *LikeHandler {
	return &LikeHandler{
		store:  store,
		cache:  c,
		logger: logger,
	}
}

// LikesResponse is the body for like count reads and like submissions.
type LikesResponse struct {
	BlogID     string `json:"blogId"`
	LikesCount int    `json:"likes_count"`
	HasLiked   bool   `json:"has_liked"`
}

// Get handles GET /blogs/{id}/likes. The count is cached briefly; has_liked
// is always computed fresh for the caller's visitor token.
func (h *LikeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	blogID := chi.URLParam(r, "id")
	token := visitorToken(clientIP(r))

	var count int
	cached, ok := h.cache.Get(ctx, cache.LikesKey(blogID))
	if ok {
		if err := json.Unmarshal(cached, &count); err != nil {
			ok = false
		}
	}
	if !ok {
		count, _ = h.store.CountLikes(ctx, blogID)
		h.store.UpdateBlogCounters(ctx, blogID, &count, nil)
		if raw, err := json.Marshal(count); err == nil {
			h.cache.Set(ctx, cache.LikesKey(blogID), raw, cache.LikesTTL)
		}
	}

	liked, err := h.store.HasLiked(ctx, blogID, token)
	if err != nil {
		h.logger.Warn("has-liked check failed",
			zap.String("blogId", blogID),
			zap.Error(err))
		liked = false
	}

	common.RespondJSON(w, http.StatusOK, LikesResponse{
		BlogID:     blogID,
		LikesCount: count,
		HasLiked:   liked,
	})
}

// Create handles POST /blogs/{id}/likes. One like per visitor token.
func (h *LikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	blogID := chi.URLParam(r, "id")
	token := visitorToken(clientIP(r))

	blog, err := h.store.GetBlogByID(ctx, blogID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if blog == nil {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "Blog not found")
		return
	}

	liked, err := h.store.HasLiked(ctx, blogID, token)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if liked {
		common.RespondError(w, http.StatusConflict, "CONFLICT", "Already liked")
		return
	}

	if err := h.store.AddLike(ctx, blogID, token); err != nil {
		respondAppError(w, err)
		return
	}

	count, _ := h.store.CountLikes(ctx, blogID)
	h.store.UpdateBlogCounters(ctx, blogID, &count, nil)
	cache.InvalidateLikes(ctx, h.cache, blogID)

	common.RespondJSON(w, http.StatusCreated, LikesResponse{
		BlogID:     blogID,
		LikesCount: count,
		HasLiked:   true,
	})
}
