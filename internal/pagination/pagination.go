package pagination

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const DefaultLimit int64 = 10

const (
	SortNew     = "new"
	SortOld     = "old"
	TypePopular = "popular"
)

// ListQuery carries the parsed listing parameters of one request.
type ListQuery struct {
	Offset int64
	Limit  int64
	Sort   string // "new" | "old"
	Type   string // "popular" | ""
}

// Parse builds a ListQuery from raw query-string values, falling back to the
// defaults (offset 0, limit 10, sort "new") on missing or unusable input.
func Parse(offset, limit, sort, typ string) ListQuery {
	q := ListQuery{Offset: 0, Limit: DefaultLimit, Sort: SortNew, Type: typ}
	if n, err := strconv.ParseInt(offset, 10, 64); err == nil && n >= 0 {
		q.Offset = n
	}
	if n, err := strconv.ParseInt(limit, 10, 64); err == nil && n > 0 {
		q.Limit = n
	}
	if sort != "" {
		q.Sort = sort
	}
	return q
}

// SortDoc builds the two-field Mongo sort document. Both keys are always
// applied: popular and new are independent axes, so all four combinations are
// valid.
func (q ListQuery) SortDoc() bson.D {
	likes := 1
	if q.Type == TypePopular {
		likes = -1
	}
	created := 1
	if q.Sort == SortNew {
		created = -1
	}
	return bson.D{
		{Key: "totalLikes", Value: likes},
		{Key: "createdAt", Value: created},
	}
}

// Cursors returns the next/previous page URLs for a collection of count
// documents. base is the absolute request URL without its query string; the
// cursors carry only offset and limit, so they are directly fetchable.
//
// previous is computed by pure arithmetic even when the current page is past
// the end of the collection.
func (q ListQuery) Cursors(base string, count int64) (next, previous *string) {
	if count > q.Offset+q.Limit {
		u := fmt.Sprintf("%s?offset=%d&limit=%d", base, q.Offset+q.Limit, q.Limit)
		next = &u
	}
	if q.Offset-q.Limit >= 0 {
		u := fmt.Sprintf("%s?offset=%d&limit=%d", base, q.Offset-q.Limit, q.Limit)
		previous = &u
	}
	return next, previous
}

// Window clips [Offset, Offset+Limit) to a slice of length total and returns
// the start and end indexes of the page.
func (q ListQuery) Window(total int) (start, end int) {
	start = int(q.Offset)
	if start > total {
		start = total
	}
	end = start + int(q.Limit)
	if end > total {
		end = total
	}
	return start, end
}
