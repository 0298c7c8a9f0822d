// Package handlers translates HTTP requests into store calls, with a
// read-through cache in front of every read and blunt invalidation after
// every write.
package handlers

import (
	"context"
	"crypto/md5"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/AbhijeetAayush/My-Portfolio/domain"
)

// maxBodyBytes bounds every request body.
const maxBodyBytes = 1 << 20

// PortfolioStore is the slice of the store the portfolio handler uses.
type PortfolioStore interface {
	GetPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error)
	UpsertPortfolio(ctx context.Context, userID string, patch domain.PortfolioPatch) (*domain.Portfolio, error)
}

// BlogStore is the slice of the store the blog handler uses.
type BlogStore interface {
	CreateBlog(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	GetBlogByID(ctx context.Context, blogID string) (*domain.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*domain.Blog, error)
	ListBlogsByDate(ctx context.Context, limit int32, cursor string) ([]*domain.Blog, string, error)
	UpdateBlog(ctx context.Context, blogID string, patch domain.BlogPatch) (*domain.Blog, error)
	DeleteBlog(ctx context.Context, blogID string) (bool, error)
}

// CommentStore is the slice of the store the comment handler uses.
type CommentStore interface {
	CreateComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetCommentsByBlog(ctx context.Context, blogID string) ([]*domain.Comment, error)
	GetCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID string) (bool, error)
	GetBlogByID(ctx context.Context, blogID string) (*domain.Blog, error)
	UpdateBlogCounters(ctx context.Context, blogID string, likes, comments *int)
}

// LikeStore is the slice of the store the like handler uses.
type LikeStore interface {
	AddLike(ctx context.Context, blogID, token string) error
	CountLikes(ctx context.Context, blogID string) (int, error)
	HasLiked(ctx context.Context, blogID, token string) (bool, error)
	GetBlogByID(ctx context.Context, blogID string) (*domain.Blog, error)
	UpdateBlogCounters(ctx context.Context, blogID string, likes, comments *int)
}

// UserStore is the slice of the store the auth handler uses.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	TouchLastLogin(ctx context.Context, email string)
}

// clientIP extracts the caller's address, preferring the proxy-set headers
// API Gateway and the local chi middleware populate.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if real := r.Header.Get("X-Real-Ip"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// visitorToken builds the timestamp:ip-hash like identity. The timestamp
// component means the same visitor produces a new identity once the clock
// second changes.
func visitorToken(ip string) string {
	return fmt.Sprintf("%d:%x", time.Now().Unix(), md5.Sum([]byte(ip)))
}
