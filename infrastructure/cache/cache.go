// Package cache provides the read-through cache consulted before store
// reads and invalidated after store writes. Cache failures always degrade
// to a miss; they are logged and never surfaced to callers.
package cache

import (
	"context"
	"time"
)

// Cache is the time-bounded key/value cache interface.
type Cache interface {
	// Get returns the cached value for key, or false on miss or error.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores value under key for ttl. Best-effort.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// Delete removes the given keys. Best-effort.
	Delete(ctx context.Context, keys ...string)
	// DeletePattern removes all keys matching a glob pattern. Best-effort.
	DeletePattern(ctx context.Context, pattern string)
}

// Cache key layout and expiries, shared by handlers and invalidation.
const (
	PortfolioKey = "portfolio_data"
	BlogListKey  = "blogs:list"

	PortfolioTTL = 24 * time.Hour
	BlogTTL      = time.Hour
	CommentsTTL  = 30 * time.Minute
	LikesTTL     = 15 * time.Minute
)

// BlogKey is the cache key for a single blog, addressed by id or slug.
func BlogKey(idOrSlug string) string {
	return "blogs:" + idOrSlug
}

// CommentsKey is the cache key for a blog's comment listing.
func CommentsKey(blogID string) string {
	return "comments:" + blogID
}

// LikesKey is the cache key for a blog's like count.
func LikesKey(blogID string) string {
	return "likes_count:" + blogID
}

// InvalidatePortfolio drops the cached portfolio.
func InvalidatePortfolio(ctx context.Context, c Cache) {
	c.Delete(ctx, PortfolioKey)
}

// InvalidateBlogs drops the blog listing and, when blogID is non-empty,
// every cached blog entry. Pattern deletion is blunt on purpose: a slug
// change would otherwise leave a stale entry under the old slug key.
func InvalidateBlogs(ctx context.Context, c Cache, blogID string) {
	c.Delete(ctx, BlogListKey)
	if blogID != "" {
		c.Delete(ctx, BlogKey(blogID))
	}
	c.DeletePattern(ctx, "blogs:*")
}

// InvalidateComments drops a blog's cached comment listing.
func InvalidateComments(ctx context.Context, c Cache, blogID string) {
	c.Delete(ctx, CommentsKey(blogID))
}

// InvalidateLikes drops a blog's cached like count.
func InvalidateLikes(ctx context.Context, c Cache, blogID string) {
	c.Delete(ctx, LikesKey(blogID))
}
