package dynamodb

import (
	"testing"

	"github.com/AbhijeetAayush/My-Portfolio/domain"

	"github.com/stretchr/testify/assert"
)

func TestBlogCodecRoundTrip(t *testing.T) {
	blog := &domain.Blog{
		BlogID:           "abc-123",
		CreatedAt:        1700000000,
		Title:            "A Post",
		Slug:             "a-post",
		Content:          "body text",
		FeaturedImageURL: "https://example.com/img.png",
		Tags:             []string{"go", "aws"},
		Category:         "engineering",
		Author:           "admin@example.com",
		ReadingTime:      3,
		LikesCount:       5,
		CommentsCount:    2,
		SEODescription:   "a post about things",
		PublishedAt:      1700000000,
	}

	item := encodeBlog(blog)
	assert.Equal(t, "BLOG#abc-123", item.PK)
	assert.Equal(t, "BLOG#ALL", item.GSI1PK)
	assert.Equal(t, "SLUG#a-post", item.GSI2PK)
	assert.Equal(t, "abc-123", item.GSI2SK)
	assert.Equal(t, "BLOG", item.EntityType)

	decoded := decodeBlog(item)
	assert.Equal(t, blog, decoded)
}

func TestEncodeBlogRederivesIndexKeys(t *testing.T) {
	blog := &domain.Blog{BlogID: "abc", Slug: "before", CreatedAt: 1000}
	first := encodeBlog(blog)
	assert.Equal(t, "SLUG#before", first.GSI2PK)

	blog.Slug = "after"
	second := encodeBlog(blog)
	assert.Equal(t, "SLUG#after", second.GSI2PK, "index keys follow the current attributes")
}

func TestCommentCodecRoundTrip(t *testing.T) {
	comment := &domain.Comment{
		CommentID:   "c-1",
		CreatedAt:   1700000000,
		BlogID:      "abc-123",
		AuthorName:  "Reader",
		AuthorEmail: "reader@example.com",
		Content:     "Nice post",
		Status:      domain.CommentStatusApproved,
	}

	item := encodeComment(comment)
	assert.Equal(t, "COMMENT#c-1", item.PK)
	assert.Equal(t, "COMMENT#BLOG#abc-123", item.GSI1PK)

	assert.Equal(t, comment, decodeComment(item))
}

func TestLikeCodecRoundTrip(t *testing.T) {
	like := &domain.Like{
		BlogID:    "abc-123",
		Token:     "1700000000:deadbeef",
		ExpiresAt: 1702592000,
	}

	item := encodeLike(like)
	assert.Equal(t, "LIKE#abc-123#1700000000:deadbeef", item.PK)
	assert.Equal(t, "LIKE#abc-123", item.GSI1PK)

	assert.Equal(t, like, decodeLike(item))
}

func TestPortfolioCodecRoundTrip(t *testing.T) {
	portfolio := &domain.Portfolio{
		UserID:       "default",
		Bio:          "engineer",
		Email:        "me@example.com",
		SocialLinks:  map[string]string{"github": "https://github.com/me"},
		AboutContent: "about me",
		Projects:     []domain.Project{{Title: "thing", Tags: []string{"go"}}},
		Experience:   []domain.Experience{{Company: "Acme", Role: "SWE"}},
		UpdatedAt:    1700000000,
	}

	item := encodePortfolio(portfolio)
	assert.Equal(t, "PORTFOLIO#default", item.PK)

	assert.Equal(t, portfolio, decodePortfolio(item))
}

func TestUserCodecRoundTrip(t *testing.T) {
	user := &domain.User{
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    1700000000,
		LastLogin:    1700000100,
	}

	item := encodeUser(user)
	assert.Equal(t, "USER#admin@example.com", item.PK)

	assert.Equal(t, user, decodeUser(item))
}
