package dynamodb

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyConstruction(t *testing.T) {
	pk, sk := portfolioKey("default")
	assert.Equal(t, "PORTFOLIO#default", pk)
	assert.Equal(t, "METADATA", sk)

	pk, sk = blogKey("abc-123")
	assert.Equal(t, "BLOG#abc-123", pk)
	assert.Equal(t, "METADATA", sk)

	pk, sk = blogDateIndexKey(1700000000)
	assert.Equal(t, "BLOG#ALL", pk)
	assert.Equal(t, "00000000001700000000", sk)

	pk, sk = blogSlugIndexKey("my-first-post", "abc-123")
	assert.Equal(t, "SLUG#my-first-post", pk)
	assert.Equal(t, "abc-123", sk)

	pk, sk = commentKey("c-1", 1700000000)
	assert.Equal(t, "COMMENT#c-1", pk)
	assert.Equal(t, "00000000001700000000", sk)

	pk, sk = commentBlogIndexKey("abc-123", 1700000000)
	assert.Equal(t, "COMMENT#BLOG#abc-123", pk)
	assert.Equal(t, "00000000001700000000", sk)

	pk, sk = likeKey("abc-123", "1700000000:deadbeef")
	assert.Equal(t, "LIKE#abc-123#1700000000:deadbeef", pk)
	assert.Equal(t, "1700000000:deadbeef", sk)

	pk, sk = likeBlogIndexKey("abc-123", "1700000000:deadbeef")
	assert.Equal(t, "LIKE#abc-123", pk)
	assert.Equal(t, "1700000000:deadbeef", sk)

	pk, sk = userKey("admin@example.com")
	assert.Equal(t, "USER#admin@example.com", pk)
	assert.Equal(t, "METADATA", sk)
}

func TestSortableTimestampOrder(t *testing.T) {
	timestamps := []int64{0, 1, 999, 1000, 1699999999, 1700000000}

	encoded := make([]string, len(timestamps))
	for i, ts := range timestamps {
		encoded[i] = sortableTimestamp(ts)
	}

	sorted := append([]string(nil), encoded...)
	sort.Strings(sorted)
	assert.Equal(t, encoded, sorted, "lexical order must match numeric order")
}
