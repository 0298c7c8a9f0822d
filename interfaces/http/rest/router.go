package rest

import (
	"net/http"

	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/cache"
	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/config"
	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/persistence/dynamodb"
	"github.com/AbhijeetAayush/My-Portfolio/interfaces/http/rest/handlers"
	"github.com/AbhijeetAayush/My-Portfolio/interfaces/http/rest/middleware"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/auth"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg    *config.Config
	store  *dynamodb.Store
	cache  cache.Cache
	tokens *auth.TokenService
	logger *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	store *dynamodb.Store,
	c cache.Cache,
	tokens *auth.TokenService,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:    cfg,
		store:  store,
		cache:  c,
		tokens: tokens,
		logger: logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	portfolioHandler := handlers.NewPortfolioHandler(rt.store, rt.cache, rt.cfg.PortfolioUserID, rt.logger)
	blogHandler := handlers.NewBlogHandler(rt.store, rt.cache, rt.logger)
	commentHandler := handlers.NewCommentHandler(rt.store, rt.cache, rt.logger)
	likeHandler := handlers.NewLikeHandler(rt.store, rt.cache, rt.logger)
	authHandler := handlers.NewAuthHandler(rt.store, rt.tokens, rt.logger)

	router.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Get("/portfolio", portfolioHandler.Get)

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogHandler.List)
			r.Get("/{id}", blogHandler.Get)
			r.Get("/{id}/comments", commentHandler.ListByBlog)
			r.Post("/{id}/comments", commentHandler.Create)
			r.Get("/{id}/likes", likeHandler.Get)
			r.Post("/{id}/likes", likeHandler.Create)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.tokens))

			r.Put("/portfolio", portfolioHandler.Update)
			r.Post("/blogs", blogHandler.Create)
			r.Put("/blogs/{id}", blogHandler.Update)
			r.Delete("/blogs/{id}", blogHandler.Delete)
			r.Delete("/comments/{id}", commentHandler.Delete)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
