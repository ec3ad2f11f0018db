package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"salintempel/model"
)

type TagRepository interface {
	All(ctx context.Context) ([]model.Tag, error)
	Names(ctx context.Context) ([]string, error)
	InsertMany(ctx context.Context, names []string) error
}

type mongoTagRepo struct {
	col *mongo.Collection
}

func NewMongoTagRepo(db *mongo.Database) TagRepository {
	return &mongoTagRepo{col: db.Collection("tags")}
}

func (r *mongoTagRepo) All(ctx context.Context) ([]model.Tag, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tags := make([]model.Tag, 0)
	if err := cur.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *mongoTagRepo) Names(ctx context.Context) ([]string, error) {
	tags, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names, nil
}

// InsertMany batch-inserts tag documents, unordered so a duplicate name does
// not stop the rest of the batch.
func (r *mongoTagRepo) InsertMany(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(names))
	for _, name := range names {
		docs = append(docs, model.Tag{Name: name})
	}
	_, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}
