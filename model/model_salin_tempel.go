package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SalinTempel is a user-authored text snippet. Field names in bson stay
// camelCase to remain wire-compatible with the existing collection.
//
// totalLikes is maintained by $inc on every toggle; likesBy membership is the
// authoritative like state.
type SalinTempel struct {
	ID         bson.ObjectID `json:"_id,omitempty"    bson:"_id,omitempty"`
	Title      string        `json:"title"            bson:"title"`
	Content    string        `json:"content"          bson:"content"`
	Author     string        `json:"author,omitempty" bson:"author,omitempty"`
	IsNSFW     bool          `json:"isNSFW"           bson:"isNSFW"`
	Tags       []string      `json:"tags"             bson:"tags"`
	LikesBy    []string      `json:"likesBy"          bson:"likesBy"`
	TotalLikes int           `json:"totalLikes"       bson:"totalLikes"`
	CreatedAt  time.Time     `json:"createdAt"        bson:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"        bson:"updatedAt"`
}

// IsLikedBy reports whether userID is a member of LikesBy.
func (s *SalinTempel) IsLikedBy(userID string) bool {
	for _, u := range s.LikesBy {
		if u == userID {
			return true
		}
	}
	return false
}
