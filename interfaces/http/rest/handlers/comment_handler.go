package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AbhijeetAayush/My-Portfolio/domain"
	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/cache"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/common"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CommentHandler serves comment listing, creation, and deletion.
type CommentHandler struct {
	store  CommentStore
	cache  cache.Cache
	logger *zap.Logger
}

// NewCommentHandler creates a comment handler.
func NewCommentHandler(store CommentStore, c cache.Cache, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{
		store:  store,
		cache:  c,
		logger: logger,
	}
}

// CreateCommentRequest is the body for POST /blogs/{id}/comments.
type CreateCommentRequest struct {
	AuthorName  string `json:"author_name" validate:"required,min=1,max=100"`
	AuthorEmail string `json:"author_email" validate:"required,email"`
	Content     string `json:"content" validate:"required,max=2000"`
}

// ListByBlog handles GET /blogs/{id}/comments. Listing also refreshes the
// blog's denormalized comments_count from the index cardinality.
func (h *CommentHandler) ListByBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	blogID := chi.URLParam(r, "id")

	if cached, ok := h.cache.Get(ctx, cache.CommentsKey(blogID)); ok {
		common.RespondJSON(w, http.StatusOK, json.RawMessage(cached))
		return
	}

	comments, err := h.store.GetCommentsByBlog(ctx, blogID)
	if err != nil {
		respondAppError(w, err)
		return
	}

	count := len(comments)
	h.store.UpdateBlogCounters(ctx, blogID, nil, &count)

	if raw, err := json.Marshal(comments); err == nil {
		h.cache.Set(ctx, cache.CommentsKey(blogID), raw, cache.CommentsTTL)
	}

	common.RespondJSON(w, http.StatusOK, comments)
}

// Create handles POST /blogs/{id}/comments. Comments are auto-approved.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	blogID := chi.URLParam(r, "id")

	blog, err := h.store.GetBlogByID(ctx, blogID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if blog == nil {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "Blog not found")
		return
	}

	var req CreateCommentRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	comment := domain.NewComment(blogID, req.AuthorName, req.AuthorEmail, req.Content)

	created, err := h.store.CreateComment(ctx, comment)
	if err != nil {
		respondAppError(w, err)
		return
	}

	h.refreshCommentCount(r, blogID)
	cache.InvalidateComments(ctx, h.cache, blogID)

	common.RespondJSON(w, http.StatusCreated, created)
}

// Delete handles DELETE /comments/{id} (admin).
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	commentID := chi.URLParam(r, "id")

	comment, err := h.store.GetCommentByID(ctx, commentID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if comment == nil {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "Comment not found")
		return
	}

	deleted, err := h.store.DeleteComment(ctx, commentID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if !deleted {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "Comment not found")
		return
	}

	h.refreshCommentCount(r, comment.BlogID)
	cache.InvalidateComments(ctx, h.cache, comment.BlogID)

	common.RespondMessage(w, http.StatusOK, "Comment deleted successfully")
}

func (h *CommentHandler) refreshCommentCount(r *http.Request, blogID string) {
	ctx := r.Context()
	comments, err := h.store.GetCommentsByBlog(ctx, blogID)
	if err != nil {
		return
	}
	count := len(comments)
	h.store.UpdateBlogCounters(ctx, blogID, nil, &count)
}
