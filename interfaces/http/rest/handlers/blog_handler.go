package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/AbhijeetAayush/My-Portfolio/domain"
	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/cache"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/auth"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/common"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// BlogHandler serves blog CRUD and the paginated listing.
type BlogHandler struct {
	store  BlogStore
	cache  cache.Cache
	logger *zap.Logger
}

// NewBlogHandler creates a blog handler.
func NewBlogHandler(store BlogStore, c cache.Cache, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{
		store:  store,
		cache:  c,
		logger: logger,
	}
}

// CreateBlogRequest is the body for POST /blogs.
type CreateBlogRequest struct {
	Title            string   `json:"title" validate:"required,min=1,max=200"`
	Content          string   `json:"content" validate:"required"`
	Slug             string   `json:"slug,omitempty"`
	FeaturedImageURL string   `json:"featured_image_url,omitempty"`
	Tags             []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Category         string   `json:"category,omitempty" validate:"omitempty,max=100"`
	SEODescription   string   `json:"seo_description,omitempty" validate:"omitempty,max=300"`
}

// ListResponse is the payload for GET /blogs.
type ListResponse struct {
	Items      []*domain.Blog `json:"items"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// List handles GET /blogs. The first default page is cached; pages reached
// through a cursor always hit the store.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := int32(defaultListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			if n > maxListLimit {
				n = maxListLimit
			}
			limit = int32(n)
		}
	}
	cursor := r.URL.Query().Get("cursor")

	cacheable := cursor == "" && limit == defaultListLimit
	if cacheable {
		if cached, ok := h.cache.Get(ctx, cache.BlogListKey); ok {
			common.RespondJSON(w, http.StatusOK, json.RawMessage(cached))
			return
		}
	}

	blogs, nextCursor, err := h.store.ListBlogsByDate(ctx, limit, cursor)
	if err != nil {
		respondAppError(w, err)
		return
	}

	response := ListResponse{Items: blogs, NextCursor: nextCursor}

	if cacheable {
		if raw, err := json.Marshal(response); err == nil {
			h.cache.Set(ctx, cache.BlogListKey, raw, cache.BlogTTL)
		}
	}

	common.RespondJSON(w, http.StatusOK, response)
}

// Get handles GET /blogs/{id}. The path segment is tried as a blog id
// first, then as a slug.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idOrSlug := chi.URLParam(r, "id")

	if cached, ok := h.cache.Get(ctx, cache.BlogKey(idOrSlug)); ok {
		common.RespondJSON(w, http.StatusOK, json.RawMessage(cached))
		return
	}

	blog, err := h.store.GetBlogByID(ctx, idOrSlug)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if blog == nil {
		blog, err = h.store.GetBlogBySlug(ctx, idOrSlug)
		if err != nil {
			respondAppError(w, err)
			return
		}
	}
	if blog == nil {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "Blog not found")
		return
	}

	if raw, err := json.Marshal(blog); err == nil {
		h.cache.Set(ctx, cache.BlogKey(idOrSlug), raw, cache.BlogTTL)
	}

	common.RespondJSON(w, http.StatusOK, blog)
}

// Create handles POST /blogs (admin). The slug is derived from the title
// when absent; duplicate slugs are rejected by a pre-check that is not
// atomic with the write.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateBlogRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	email, ok := auth.EmailFromContext(ctx)
	if !ok {
		common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = domain.GenerateSlug(req.Title)
	}
	if !domain.ValidSlug(slug) {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid slug format. Use lowercase letters, numbers, and hyphens only")
		return
	}

	existing, err := h.store.GetBlogBySlug(ctx, slug)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if existing != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "A blog with this slug already exists")
		return
	}

	blog := domain.NewBlog(req.Title, slug, req.Content, email)
	blog.FeaturedImageURL = req.FeaturedImageURL
	blog.Category = req.Category
	blog.SEODescription = req.SEODescription
	if req.Tags != nil {
		blog.Tags = req.Tags
	}

	created, err := h.store.CreateBlog(ctx, blog)
	if err != nil {
		respondAppError(w, err)
		return
	}

	cache.InvalidateBlogs(ctx, h.cache, "")

	common.RespondJSON(w, http.StatusCreated, created)
}

// Update handles PUT /blogs/{id} (admin).
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	blogID := chi.URLParam(r, "id")

	var patch domain.BlogPatch
	if err := common.ParseJSONBody(r, &patch, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(patch); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if patch.Slug != nil {
		if !domain.ValidSlug(*patch.Slug) {
			common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
				"Invalid slug format. Use lowercase letters, numbers, and hyphens only")
			return
		}
		existing, err := h.store.GetBlogBySlug(ctx, *patch.Slug)
		if err != nil {
			respondAppError(w, err)
			return
		}
		if existing != nil && existing.BlogID != blogID {
			common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "A blog with this slug already exists")
			return
		}
	}

	blog, err := h.store.UpdateBlog(ctx, blogID, patch)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if blog == nil {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "Blog not found")
		return
	}

	cache.InvalidateBlogs(ctx, h.cache, blogID)

	common.RespondJSON(w, http.StatusOK, blog)
}

// Delete handles DELETE /blogs/{id} (admin). Comments and likes are left
// behind on purpose; they remain reachable by direct id or index query.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	blogID := chi.URLParam(r, "id")

	deleted, err := h.store.DeleteBlog(ctx, blogID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	if !deleted {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "Blog not found")
		return
	}

	cache.InvalidateBlogs(ctx, h.cache, blogID)

	common.RespondMessage(w, http.StatusOK, "Blog deleted successfully")
}
