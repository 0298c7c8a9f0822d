package dynamodb

import (
	"github.com/AbhijeetAayush/My-Portfolio/domain"
)

// Item structs pair the domain attributes with the internal key fields.
// Encoding always re-derives every key from the entity's current
// attributes; stale stored index fields are never trusted. Decoding drops
// the key fields so they are never exposed to callers.

type portfolioItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`

	UserID        string              `dynamodbav:"userId"`
	ProfilePicURL string              `dynamodbav:"profile_pic_url"`
	Bio           string              `dynamodbav:"bio"`
	Email         string              `dynamodbav:"email"`
	SocialLinks   map[string]string   `dynamodbav:"social_links"`
	AboutContent  string              `dynamodbav:"about_content"`
	Projects      []domain.Project    `dynamodbav:"projects"`
	Experience    []domain.Experience `dynamodbav:"experience"`
	UpdatedAt     int64               `dynamodbav:"updated_at"`
}

func encodePortfolio(p *domain.Portfolio) portfolioItem {
	pk, sk := portfolioKey(p.UserID)
	return portfolioItem{
		PK:         pk,
		SK:         sk,
		EntityType: "PORTFOLIO",

		UserID:        p.UserID,
		ProfilePicURL: p.ProfilePicURL,
		Bio:           p.Bio,
		Email:         p.Email,
		SocialLinks:   p.SocialLinks,
		AboutContent:  p.AboutContent,
		Projects:      p.Projects,
		Experience:    p.Experience,
		UpdatedAt:     p.UpdatedAt,
	}
}

func decodePortfolio(item portfolioItem) *domain.Portfolio {
	return &domain.Portfolio{
		UserID:        item.UserID,
		ProfilePicURL: item.ProfilePicURL,
		Bio:           item.Bio,
		Email:         item.Email,
		SocialLinks:   item.SocialLinks,
		AboutContent:  item.AboutContent,
		Projects:      item.Projects,
		Experience:    item.Experience,
		UpdatedAt:     item.UpdatedAt,
	}
}

type blogItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	GSI2PK     string `dynamodbav:"GSI2PK"`
	GSI2SK     string `dynamodbav:"GSI2SK"`
	EntityType string `dynamodbav:"EntityType"`

	BlogID           string   `dynamodbav:"blogId"`
	CreatedAt        int64    `dynamodbav:"created_at"`
	Title            string   `dynamodbav:"title"`
	Slug             string   `dynamodbav:"slug"`
	Content          string   `dynamodbav:"content"`
	FeaturedImageURL string   `dynamodbav:"featured_image_url"`
	Tags             []string `dynamodbav:"tags"`
	Category         string   `dynamodbav:"category"`
	Author           string   `dynamodbav:"author"`
	ReadingTime      int      `dynamodbav:"reading_time"`
	LikesCount       int      `dynamodbav:"likes_count"`
	CommentsCount    int      `dynamodbav:"comments_count"`
	SEODescription   string   `dynamodbav:"seo_description"`
	PublishedAt      int64    `dynamodbav:"published_at"`
}

func encodeBlog(b *domain.Blog) blogItem {
	pk, sk := blogKey(b.BlogID)
	datePK, dateSK := blogDateIndexKey(b.CreatedAt)
	slugPK, slugSK := blogSlugIndexKey(b.Slug, b.BlogID)
	return blogItem{
		PK:         pk,
		SK:         sk,
		GSI1PK:     datePK,
		GSI1SK:     dateSK,
		GSI2PK:     slugPK,
		GSI2SK:     slugSK,
		EntityType: "BLOG",

		BlogID:           b.BlogID,
		CreatedAt:        b.CreatedAt,
		Title:            b.Title,
		Slug:             b.Slug,
		Content:          b.Content,
		FeaturedImageURL: b.FeaturedImageURL,
		Tags:             b.Tags,
		Category:         b.Category,
		Author:           b.Author,
		ReadingTime:      b.ReadingTime,
		LikesCount:       b.LikesCount,
		CommentsCount:    b.CommentsCount,
		SEODescription:   b.SEODescription,
		PublishedAt:      b.PublishedAt,
	}
}

func decodeBlog(item blogItem) *domain.Blog {
	return &domain.Blog{
		BlogID:           item.BlogID,
		CreatedAt:        item.CreatedAt,
		Title:            item.Title,
		Slug:             item.Slug,
		Content:          item.Content,
		FeaturedImageURL: item.FeaturedImageURL,
		Tags:             item.Tags,
		Category:         item.Category,
		Author:           item.Author,
		ReadingTime:      item.ReadingTime,
		LikesCount:       item.LikesCount,
		CommentsCount:    item.CommentsCount,
		SEODescription:   item.SEODescription,
		PublishedAt:      item.PublishedAt,
	}
}

type commentItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"EntityType"`

	CommentID   string `dynamodbav:"commentId"`
	CreatedAt   int64  `dynamodbav:"created_at"`
	BlogID      string `dynamodbav:"blogId"`
	AuthorName  string `dynamodbav:"author_name"`
	AuthorEmail string `dynamodbav:"author_email"`
	Content     string `dynamodbav:"content"`
	Status      string `dynamodbav:"status"`
}

func encodeComment(c *domain.Comment) commentItem {
	pk, sk := commentKey(c.CommentID, c.CreatedAt)
	idxPK, idxSK := commentBlogIndexKey(c.BlogID, c.CreatedAt)
	return commentItem{
		PK:         pk,
		SK:         sk,
		GSI1PK:     idxPK,
		GSI1SK:     idxSK,
		EntityType: "COMMENT",

		CommentID:   c.CommentID,
		CreatedAt:   c.CreatedAt,
		BlogID:      c.BlogID,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		Content:     c.Content,
		Status:      c.Status,
	}
}

func decodeComment(item commentItem) *domain.Comment {
	return &domain.Comment{
		CommentID:   item.CommentID,
		CreatedAt:   item.CreatedAt,
		BlogID:      item.BlogID,
		AuthorName:  item.AuthorName,
		AuthorEmail: item.AuthorEmail,
		Content:     item.Content,
		Status:      item.Status,
	}
}

type likeItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"EntityType"`

	BlogID    string `dynamodbav:"blogId"`
	Token     string `dynamodbav:"timestamp_ip"`
	ExpiresAt int64  `dynamodbav:"ttl"`
}

func encodeLike(l *domain.Like) likeItem {
	pk, sk := likeKey(l.BlogID, l.Token)
	idxPK, idxSK := likeBlogIndexKey(l.BlogID, l.Token)
	return likeItem{
		PK:         pk,
		SK:         sk,
		GSI1PK:     idxPK,
		GSI1SK:     idxSK,
		EntityType: "LIKE",

		BlogID:    l.BlogID,
		Token:     l.Token,
		ExpiresAt: l.ExpiresAt,
	}
}

func decodeLike(item likeItem) *domain.Like {
	return &domain.Like{
		BlogID:    item.BlogID,
		Token:     item.Token,
		ExpiresAt: item.ExpiresAt,
	}
}

type userItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`

	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    int64  `dynamodbav:"created_at"`
	LastLogin    int64  `dynamodbav:"last_login"`
}

func encodeUser(u *domain.User) userItem {
	pk, sk := userKey(u.Email)
	return userItem{
		PK:         pk,
		SK:         sk,
		EntityType: "USER",

		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		LastLogin:    u.LastLogin,
	}
}

func decodeUser(item userItem) *domain.User {
	return &domain.User{
		Email:        item.Email,
		PasswordHash: item.PasswordHash,
		CreatedAt:    item.CreatedAt,
		LastLogin:    item.LastLogin,
	}
}
