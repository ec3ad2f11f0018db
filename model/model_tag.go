package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Tag is a globally unique label. Tags are created lazily the first time a
// post references an unknown name and are never updated or deleted.
type Tag struct {
	ID   bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string        `json:"name"          bson:"name"`
}
