package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestParseDefaults(t *testing.T) {
	q := Parse("", "", "", "")
	assert.Equal(t, int64(0), q.Offset)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, SortNew, q.Sort)
	assert.Equal(t, "", q.Type)
}

func TestParseRejectsUnusableValues(t *testing.T) {
	q := Parse("-3", "0", "old", "popular")
	assert.Equal(t, int64(0), q.Offset, "negative offset falls back to 0")
	assert.Equal(t, DefaultLimit, q.Limit, "non-positive limit falls back to default")
	assert.Equal(t, SortOld, q.Sort)
	assert.Equal(t, TypePopular, q.Type)

	q = Parse("abc", "xyz", "", "")
	assert.Equal(t, int64(0), q.Offset)
	assert.Equal(t, DefaultLimit, q.Limit)
}

func TestSortDocAllCombinations(t *testing.T) {
	cases := []struct {
		sort, typ      string
		likes, created int
	}{
		{SortNew, TypePopular, -1, -1},
		{SortNew, "", 1, -1},
		{SortOld, TypePopular, -1, 1},
		{SortOld, "", 1, 1},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("sort=%s type=%s", tc.sort, tc.typ), func(t *testing.T) {
			q := ListQuery{Sort: tc.sort, Type: tc.typ}
			doc := q.SortDoc()
			require.Equal(t, bson.D{
				{Key: "totalLikes", Value: tc.likes},
				{Key: "createdAt", Value: tc.created},
			}, doc)
		})
	}
}

func TestCursorsFirstPage(t *testing.T) {
	q := ListQuery{Offset: 0, Limit: 10}
	next, prev := q.Cursors("http://example.com/api/salin-tempel", 25)

	require.NotNil(t, next)
	assert.Equal(t, "http://example.com/api/salin-tempel?offset=10&limit=10", *next)
	assert.Nil(t, prev)
}

func TestCursorsMiddlePage(t *testing.T) {
	q := ListQuery{Offset: 10, Limit: 10}
	next, prev := q.Cursors("http://example.com/api/salin-tempel", 25)

	require.NotNil(t, next)
	assert.Equal(t, "http://example.com/api/salin-tempel?offset=20&limit=10", *next)
	require.NotNil(t, prev)
	assert.Equal(t, "http://example.com/api/salin-tempel?offset=0&limit=10", *prev)
}

func TestCursorsLastPartialPage(t *testing.T) {
	q := ListQuery{Offset: 20, Limit: 10}
	next, prev := q.Cursors("http://example.com/api/salin-tempel", 25)

	assert.Nil(t, next, "5 remaining items fit in the window")
	require.NotNil(t, prev)
	assert.Equal(t, "http://example.com/api/salin-tempel?offset=10&limit=10", *prev)
}

// Offset past the collection still yields a previous cursor by the same
// arithmetic rule, even though the page itself is empty.
func TestCursorsBeyondEnd(t *testing.T) {
	q := ListQuery{Offset: 100, Limit: 10}
	next, prev := q.Cursors("http://example.com/api/salin-tempel", 25)

	assert.Nil(t, next)
	require.NotNil(t, prev)
	assert.Equal(t, "http://example.com/api/salin-tempel?offset=90&limit=10", *prev)
}

func TestCursorsIffRules(t *testing.T) {
	for offset := int64(0); offset <= 40; offset += 5 {
		for _, limit := range []int64{1, 7, 10, 50} {
			q := ListQuery{Offset: offset, Limit: limit}
			next, prev := q.Cursors("http://h/p", 25)
			assert.Equal(t, 25 > offset+limit, next != nil,
				"next presence for offset=%d limit=%d", offset, limit)
			assert.Equal(t, offset-limit >= 0, prev != nil,
				"previous presence for offset=%d limit=%d", offset, limit)
		}
	}
}

func TestWindow(t *testing.T) {
	q := ListQuery{Offset: 20, Limit: 10}

	start, end := q.Window(25)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = q.Window(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end, "offset past the end yields an empty window")
}
