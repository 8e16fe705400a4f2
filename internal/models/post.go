package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the root aggregate stored as a single MongoDB document. Likes and
// comments are embedded and always loaded and saved together with the post.
type Post struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	AuthorID     string             `json:"author_id" bson:"user_id"`
	AuthorName   string             `json:"author_name" bson:"name"`
	AuthorAvatar string             `json:"author_avatar" bson:"avatar"`
	Text         string             `json:"text" bson:"text"`
	Likes        []Like             `json:"likes" bson:"likes"`       // most recent first
	Comments     []Comment          `json:"comments" bson:"comments"` // newest first
	Version      int64              `json:"-" bson:"version"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}
