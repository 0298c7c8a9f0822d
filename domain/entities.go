// Package domain defines the entities stored by the portfolio backend and
// the typed patches used to update them.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserID is the fixed owner of the single-user portfolio.
const DefaultUserID = "default"

// Comment moderation states. Only approved comments are ever served.
const (
	CommentStatusApproved = "approved"
	CommentStatusPending  = "pending"
	CommentStatusRejected = "rejected"
)

// LikeTTL is how long a like record lives before DynamoDB expires it.
const LikeTTL = 30 * 24 * time.Hour

// Project is a single portfolio project entry.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	RepoURL     string   `json:"repo_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Experience is a single work-history entry.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Portfolio is the singleton profile document. It is created implicitly on
// first write and never deleted.
type Portfolio struct {
	UserID        string            `json:"userId"`
	ProfilePicURL string            `json:"profile_pic_url"`
	Bio           string            `json:"bio"`
	Email         string            `json:"email"`
	SocialLinks   map[string]string `json:"social_links"`
	AboutContent  string            `json:"about_content"`
	Projects      []Project         `json:"projects"`
	Experience    []Experience      `json:"experience"`
	UpdatedAt     int64             `json:"updated_at"`
}

// EmptyPortfolio returns the zero-value profile served before anything has
// been configured.
func EmptyPortfolio(userID string) *Portfolio {
	return &Portfolio{
		UserID:      userID,
		SocialLinks: map[string]string{},
		Projects:    []Project{},
		Experience:  []Experience{},
	}
}

// Blog is a single blog post. BlogID is generated once and immutable; the
// slug must be unique across all posts at any point in time.
type Blog struct {
	BlogID           string   `json:"blogId"`
	CreatedAt        int64    `json:"created_at"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Content          string   `json:"content"`
	FeaturedImageURL string   `json:"featured_image_url"`
	Tags             []string `json:"tags"`
	Category         string   `json:"category"`
	Author           string   `json:"author"`
	ReadingTime      int      `json:"reading_time"`
	LikesCount       int      `json:"likes_count"`
	CommentsCount    int      `json:"comments_count"`
	SEODescription   string   `json:"seo_description"`
	PublishedAt      int64    `json:"published_at"`
}

// NewBlog creates a blog post with a generated id and creation timestamp.
func NewBlog(title, slug, content, author string) *Blog {
	now := time.Now().Unix()
	return &Blog{
		BlogID:      uuid.NewString(),
		CreatedAt:   now,
		PublishedAt: now,
		Title:       title,
		Slug:        slug,
		Content:     content,
		Author:      author,
		Tags:        []string{},
		ReadingTime: ReadingTime(content),
	}
}

// Comment is a visitor comment on a blog post.
type Comment struct {
	CommentID   string `json:"commentId"`
	CreatedAt   int64  `json:"created_at"`
	BlogID      string `json:"blogId"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`
	Status      string `json:"status"`
}

// NewComment creates an approved comment with a generated id.
func NewComment(blogID, authorName, authorEmail, content string) *Comment {
	return &Comment{
		CommentID:   uuid.NewString(),
		CreatedAt:   time.Now().Unix(),
		BlogID:      blogID,
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Content:     content,
		Status:      CommentStatusApproved,
	}
}

// Like is an anonymous like record. Its identity is the composite of blog id
// and visitor token (timestamp:ip-hash), so the same visitor can like the
// same post again once the timestamp component changes. Records self-expire
// via the TTL attribute.
type Like struct {
	BlogID    string `json:"blogId"`
	Token     string `json:"timestamp_ip"`
	ExpiresAt int64  `json:"ttl"`
}

// NewLike creates a like record expiring after LikeTTL.
func NewLike(blogID, token string) *Like {
	return &Like{
		BlogID:    blogID,
		Token:     token,
		ExpiresAt: time.Now().Add(LikeTTL).Unix(),
	}
}

// User is an admin account, keyed by email.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CreatedAt    int64  `json:"created_at"`
	LastLogin    int64  `json:"last_login"`
}
