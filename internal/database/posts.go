package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/apopescu/daily-journal/internal/models"
	"github.com/apopescu/daily-journal/internal/services"
)

// postCollationLocale orders the date display strings. Posts store dates
// as non-padded strings, so the listing order depends on the collection's
// collation, which must stay consistent across calls.
const postCollationLocale = "ro"

// Posts is the Mongo-backed post store.
type Posts struct {
	col *mongo.Collection
}

func NewPosts(db *mongo.Database) *Posts {
	return &Posts{col: db.Collection("posts")}
}

func (p *Posts) Insert(ctx context.Context, post *models.Post) (*models.Post, error) {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if _, err := p.col.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (p *Posts) FindByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrNotFound
	}
	var post models.Post
	err = p.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByOwner returns ownerID's posts, date descending under the "ro"
// collation.
func (p *Posts) FindByOwner(ctx context.Context, ownerID string) ([]models.Post, error) {
	findOptions := options.Find().
		SetCollation(&options.Collation{Locale: postCollationLocale}).
		SetSort(bson.M{"date": -1})

	cursor, err := p.col.Find(ctx, bson.M{"user_id": ownerID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete removes a post by id. There is no ownership filter here: the
// delete route is unscoped by design.
func (p *Posts) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return services.ErrNotFound
	}
	res, err := p.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
