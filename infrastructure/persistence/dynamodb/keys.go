// Package dynamodb implements the single-table access layer: key
// construction, the entity codec, and the store operations.
//
// All entities share one table keyed by PK/SK. GSI1 serves the
// date-ordered blog listing and the per-blog comment and like lookups;
// GSI2 serves blog lookup by slug. Index keys live only as projections on
// the item and vanish with it.
package dynamodb

import "fmt"

const (
	skMetadata = "METADATA"

	// blogDatePK is the sentinel partition shared by every blog in GSI1,
	// turning the newest-first listing into a single range query.
	blogDatePK = "BLOG#ALL"
)

// sortableTimestamp renders an epoch-seconds value so lexical order equals
// numeric order in a string sort key.
func sortableTimestamp(ts int64) string {
	return fmt.Sprintf("%020d", ts)
}

func portfolioKey(userID string) (pk, sk string) {
	return "PORTFOLIO#" + userID, skMetadata
}

func blogKey(blogID string) (pk, sk string) {
	return "BLOG#" + blogID, skMetadata
}

func blogDateIndexKey(createdAt int64) (pk, sk string) {
	return blogDatePK, sortableTimestamp(createdAt)
}

// blogSlugIndexKey maps a slug to its owning blog id. Slugs are validated
// upstream to [a-z0-9-], so the "#" delimiter cannot appear in them.
func blogSlugIndexKey(slug, blogID string) (pk, sk string) {
	return "SLUG#" + slug, blogID
}

func commentKey(commentID string, createdAt int64) (pk, sk string) {
	return "COMMENT#" + commentID, sortableTimestamp(createdAt)
}

func commentBlogIndexKey(blogID string, createdAt int64) (pk, sk string) {
	return "COMMENT#BLOG#" + blogID, sortableTimestamp(createdAt)
}

// likeKey identifies a like by the composite (blogID, timestamp:ip-hash)
// token. Ids are opaque generated values, never raw user input.
func likeKey(blogID, token string) (pk, sk string) {
	return "LIKE#" + blogID + "#" + token, token
}

func likeBlogIndexKey(blogID, token string) (pk, sk string) {
	return "LIKE#" + blogID, token
}

func userKey(email string) (pk, sk string) {
	return "USER#" + email, skMetadata
}
