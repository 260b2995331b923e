package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a single journal entry. Date is the display string stamped at
// creation time; the owner listing sorts it under the store's collation
// rather than as a timestamp.
type Post struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"user_id"`
	Date    string             `bson:"date" json:"date"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
}
