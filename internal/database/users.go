package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/apopescu/daily-journal/internal/models"
	"github.com/apopescu/daily-journal/internal/services"
)

// Users is the Mongo-backed user store.
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("users")}
}

func (u *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, services.ErrNotFound
	}
	var user models.User
	err = u.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := u.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *Users) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := u.col.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpsertByGoogleID is the atomic find-or-create for Google sign-in. A
// single FindOneAndUpdate with $setOnInsert means two concurrent callbacks
// for the same googleID can never both insert: the second observes the
// first's document.
func (u *Users) UpsertByGoogleID(ctx context.Context, googleID, username string, name models.AuthorName) (*models.User, error) {
	filter := bson.M{"google_id": googleID}
	update := bson.M{"$setOnInsert": bson.M{
		"google_id":   googleID,
		"username":    username,
		"author_name": name,
		"created_at":  time.Now(),
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	if err := u.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
