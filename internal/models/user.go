package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthorName holds the structured name fields returned by the Google
// userinfo endpoint.
type AuthorName struct {
	GivenName  string `bson:"given_name,omitempty" json:"given_name,omitempty"`
	FamilyName string `bson:"family_name,omitempty" json:"family_name,omitempty"`
}

// User is a journal account. Local accounts carry Username and Password
// (an encoded Argon2id hash); Google accounts carry GoogleID and get their
// Username from the profile's primary email. Every user has at least one
// of the two credential sets.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`

	Username   string     `bson:"username,omitempty" json:"username,omitempty"`
	Password   string     `bson:"password,omitempty" json:"-"`
	GoogleID   string     `bson:"google_id,omitempty" json:"-"`
	AuthorName AuthorName `bson:"author_name,omitempty" json:"author_name,omitempty"`
}
