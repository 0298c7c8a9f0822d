// Package di wires the application's dependencies into an explicitly
// constructed container passed into the entrypoints. There is no ambient
// global client state; lifecycle is tied to process start and shutdown.
package di

import (
	"context"

	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/cache"
	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/config"
	"github.com/AbhijeetAayush/My-Portfolio/infrastructure/persistence/dynamodb"
	"github.com/AbhijeetAayush/My-Portfolio/pkg/auth"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	Store  *dynamodb.Store
	Cache  cache.Cache
	Tokens *auth.TokenService
}

// InitializeContainer creates a fully wired container.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := provideLogger(cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	store := dynamodb.NewStore(
		awsdynamodb.NewFromConfig(awsCfg),
		cfg.DynamoDBTable,
		cfg.DateIndexName,
		cfg.SlugIndexName,
		logger,
	)

	cacheClient, err := provideCache(cfg, logger)
	if err != nil {
		return nil, err
	}

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" && cfg.IsDevelopment() {
		jwtSecret = "development-secret-change-in-production"
	}
	tokens, err := auth.NewTokenService(jwtSecret, cfg.JWTIssuer)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Cache:  cacheClient,
		Tokens: tokens,
	}, nil
}

// Shutdown releases resources held by the container.
func (c *Container) Shutdown() {
	if rc, ok := c.Cache.(*cache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			c.Logger.Warn("Failed to close cache connection", zap.Error(err))
		}
	}
	_ = c.Logger.Sync()
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func provideCache(cfg *config.Config, logger *zap.Logger) (cache.Cache, error) {
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set, caching disabled")
		return cache.NewNoopCache(), nil
	}
	return cache.NewRedisCache(cfg.RedisURL, logger)
}
