package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AbhijeetAayush/My-Portfolio/domain"
	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/cache"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/auth"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/common"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// fakeBlogStore keeps blogs in a map keyed by id with a parallel slug index.
type fakeBlogStore struct {
	blogs map[string]*domain.Blog
}

func newFakeBlogStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: map[string]*domain.Blog{}}
}

func (f *fakeBlogStore) CreateBlog(_ context.Context, blog *domain.Blog) (*domain.Blog, error) {
	f.blogs[blog.BlogID] = blog
	return blog, nil
}

func (f *fakeBlogStore) GetBlogByID(_ context.Context, blogID string) (*domain.Blog, error) {
	return f.blogs[blogID], nil
}

func (f *fakeBlogStore) GetBlogBySlug(_ context.Context, slug string) (*domain.Blog, error) {
	for _, b := range f.blogs {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogStore) ListBlogsByDate(_ context.Context, _ int32, _ string) ([]*domain.Blog, string, error) {
	var out []*domain.Blog
	for _, b := range f.blogs {
		out = append(out, b)
	}
	if out == nil {
		out = []*domain.Blog{}
	}
	return out, "", nil
}

func (f *fakeBlogStore) UpdateBlog(_ context.Context, blogID string, patch domain.BlogPatch) (*domain.Blog, error) {
	blog, ok := f.blogs[blogID]
	if !ok {
		return nil, nil
	}
	patch.Apply(blog)
	return blog, nil
}

func (f *fakeBlogStore) DeleteBlog(_ context.Context, blogID string) (bool, error) {
	if _, ok := f.blogs[blogID]; !ok {
		return false, nil
	}
	delete(f.blogs, blogID)
	return true, nil
}

func blogRouter(h *BlogHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/blogs", h.List)
	r.Get("/blogs/{id}", h.Get)
	r.Post("/blogs", h.Create)
	r.Put("/blogs/{id}", h.Update)
	r.Delete("/blogs/{id}", h.Delete)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) common.APIResponse {
	t.Helper()
	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestBlogGetFallsBackToSlug(t *testing.T) {
	store := newFakeBlogStore()
	blog := domain.NewBlog("A Post", "a-post", "content", "admin@example.com")
	store.blogs[blog.BlogID] = blog

	h := NewBlogHandler(store, cache.NewNoopCache(), zap.NewNop())
	router := blogRouter(h)

	// By id.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/"+blog.BlogID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// By slug.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/a-post", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)

	// Neither.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp = decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func authedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(auth.NewContext(req.Context(), "admin@example.com"))
}

func TestBlogCreate(t *testing.T) {
	store := newFakeBlogStore()
	h := NewBlogHandler(store, cache.NewNoopCache(), zap.NewNop())
	router := blogRouter(h)

	body, _ := json.Marshal(map[string]interface{}{
		"title":   "My First Post",
		"content": "some content",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/blogs", body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created, err := store.GetBlogBySlug(context.Background(), "my-first-post")
	require.NoError(t, err)
	require.NotNil(t, created, "slug derived from the title")
	assert.Equal(t, "admin@example.com", created.Author)

	// Same title again collides on the derived slug.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/blogs", body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Message, "slug already exists")
}

func TestBlogCreateInvalidSlug(t *testing.T) {
	store := newFakeBlogStore()
	h := NewBlogHandler(store, cache.NewNoopCache(), zap.NewNop())
	router := blogRouter(h)

	body, _ := json.Marshal(map[string]interface{}{
		"title":   "Post",
		"content": "content",
		"slug":    "Not A Slug",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/blogs", body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBlogUpdateNotFound(t *testing.T) {
	store := newFakeBlogStore()
	h := NewBlogHandler(store, cache.NewNoopCache(), zap.NewNop())
	router := blogRouter(h)

	body, _ := json.Marshal(map[string]interface{}{"title": "Renamed"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPut, "/blogs/missing", body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// fakeUserStore serves a single admin account.
type fakeUserStore struct {
	user        *domain.User
	lastLoginAt int64
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeUserStore) TouchLastLogin(_ context.Context, _ string) {
	f.lastLoginAt = time.Now().Unix()
}

func newAuthHandler(t *testing.T) (*AuthHandler, *fakeUserStore, *auth.TokenService) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeUserStore{user: &domain.User{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}}
	tokens, err := auth.NewTokenService("test-secret", "portfolio-api")
	require.NoError(t, err)

	return NewAuthHandler(store, tokens, zap.NewNop()), store, tokens
}

func postJSON(handler http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body)))
	return rec
}

func TestLoginSuccess(t *testing.T) {
	h, store, tokens := newAuthHandler(t)

	rec := postJSON(h.Login, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "correct horse",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotZero(t, store.lastLoginAt)

	var resp struct {
		Data auth.TokenPair `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)

	claims, err := tokens.Verify(resp.Data.AccessToken, auth.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h, _, _ := newAuthHandler(t)

	wrongPassword := postJSON(h.Login, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong password",
	})
	unknownEmail := postJSON(h.Login, "/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "correct horse",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

	// Identical bodies so the endpoint does not reveal which emails exist.
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLoginValidation(t *testing.T) {
	h, _, _ := newAuthHandler(t)

	rec := postJSON(h.Login, "/auth/login", map[string]string{
		"email":    "not-an-email",
		"password": "correct horse",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(h.Login, "/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshFlow(t *testing.T) {
	h, _, tokens := newAuthHandler(t)

	pair, err := tokens.IssuePair("admin@example.com")
	require.NoError(t, err)

	rec := postJSON(h.Refresh, "/auth/refresh", map[string]string{
		"refresh_token": pair.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data auth.TokenPair `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.NotEmpty(t, resp.Data.RefreshToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	h, _, tokens := newAuthHandler(t)

	pair, err := tokens.IssuePair("admin@example.com")
	require.NoError(t, err)

	rec := postJSON(h.Refresh, "/auth/refresh", map[string]string{
		"refresh_token": pair.AccessToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	assert.Equal(t, "10.0.0.1", clientIP(req))

	req.Header.Set("X-Real-Ip", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.2")
	assert.Equal(t, "203.0.113.5", clientIP(req))
}

func TestVisitorTokenFormat(t *testing.T) {
	a := visitorToken("203.0.113.5")
	b := visitorToken("203.0.113.6")
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^\d+:[0-9a-f]{32}$`, a)
}
