package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the listing and favorites queries rely
// on, plus the unique tag-name constraint backing lazy tag creation.
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	_, err := db.Collection("salin_tempels").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "totalLikes", Value: -1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "likesBy", Value: 1}},
		},
		{
			Keys: bson.D{
				{Key: "author", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("tags").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_tag_name"),
	})
	return err
}
