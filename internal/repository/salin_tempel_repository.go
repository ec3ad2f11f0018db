package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"salintempel/internal/pagination"
	"salintempel/model"
)

var (
	// ErrNotFound is returned when a well-formed id does not resolve to a
	// document.
	ErrNotFound = errors.New("salin tempel not found")
	// ErrInvalidID is returned for ids that are not valid object-id hex;
	// handlers surface it as a generic failure, not a 404.
	ErrInvalidID = errors.New("invalid salin tempel id")
)

type SalinTempelRepository interface {
	Insert(ctx context.Context, st *model.SalinTempel) error
	FindByID(ctx context.Context, id string) (*model.SalinTempel, error)
	List(ctx context.Context, q pagination.ListQuery) ([]model.SalinTempel, int64, error)
	Update(ctx context.Context, id string, st model.SalinTempel) (*model.SalinTempel, error)
	Delete(ctx context.Context, id string) (*model.SalinTempel, error)
	ToggleLike(ctx context.Context, id, userID string) (*model.SalinTempel, error)
	FindByLikedUser(ctx context.Context, userID string) ([]model.SalinTempel, error)
	FindByAuthor(ctx context.Context, author string) ([]model.SalinTempel, error)
	Random(ctx context.Context) (*model.SalinTempel, error)
}

type mongoSalinTempelRepo struct {
	col *mongo.Collection
}

func NewMongoSalinTempelRepo(db *mongo.Database) SalinTempelRepository {
	return &mongoSalinTempelRepo{col: db.Collection("salin_tempels")}
}

func (r *mongoSalinTempelRepo) Insert(ctx context.Context, st *model.SalinTempel) error {
	res, err := r.col.InsertOne(ctx, st)
	if err != nil {
		return err
	}
	st.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *mongoSalinTempelRepo) FindByID(ctx context.Context, id string) (*model.SalinTempel, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var st model.SalinTempel
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&st); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *mongoSalinTempelRepo) List(ctx context.Context, q pagination.ListQuery) ([]model.SalinTempel, int64, error) {
	opts := options.Find().
		SetSkip(q.Offset).
		SetLimit(q.Limit).
		SetSort(q.SortDoc())

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	items := make([]model.SalinTempel, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

// Update overwrites the editable fields of the named document. It does not
// touch likesBy/totalLikes/createdAt and does not create tags.
func (r *mongoSalinTempelRepo) Update(ctx context.Context, id string, st model.SalinTempel) (*model.SalinTempel, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	update := bson.M{"$set": bson.M{
		"title":     st.Title,
		"content":   st.Content,
		"author":    st.Author,
		"isNSFW":    st.IsNSFW,
		"tags":      st.Tags,
		"updatedAt": st.UpdatedAt,
	}}

	var out model.SalinTempel
	res := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err := res.Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// Delete removes the document and returns it, or nil when nothing matched.
// A miss is not an error here: the original API answers success either way.
func (r *mongoSalinTempelRepo) Delete(ctx context.Context, id string) (*model.SalinTempel, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var out model.SalinTempel
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// ToggleLike loads the document to decide the direction, then flips the
// user's membership and the counter in one atomic update. Both fields change
// in a single document write, so concurrent toggles by different users cannot
// lose counter updates.
func (r *mongoSalinTempelRepo) ToggleLike(ctx context.Context, id, userID string) (*model.SalinTempel, error) {
	st, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var update bson.M
	if st.IsLikedBy(userID) {
		update = bson.M{
			"$pull": bson.M{"likesBy": userID},
			"$inc":  bson.M{"totalLikes": -1},
		}
	} else {
		update = bson.M{
			"$addToSet": bson.M{"likesBy": userID},
			"$inc":      bson.M{"totalLikes": 1},
		}
	}

	var out model.SalinTempel
	res := r.col.FindOneAndUpdate(ctx, bson.M{"_id": st.ID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err := res.Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *mongoSalinTempelRepo) FindByLikedUser(ctx context.Context, userID string) ([]model.SalinTempel, error) {
	cur, err := r.col.Find(ctx, bson.M{"likesBy": bson.M{"$in": []string{userID}}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]model.SalinTempel, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoSalinTempelRepo) FindByAuthor(ctx context.Context, author string) ([]model.SalinTempel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"author": author}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]model.SalinTempel, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Random picks one document with $sample. Returns nil on an empty collection.
func (r *mongoSalinTempelRepo) Random(ctx context.Context) (*model.SalinTempel, error) {
	pipe := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": 1}}},
	}
	cur, err := r.col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []model.SalinTempel
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
