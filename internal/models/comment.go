package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a remark embedded in a post. The author name and avatar are a
// snapshot taken when the comment was written.
type Comment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	AuthorID     string             `json:"author_id" bson:"user_id"`
	AuthorName   string             `json:"author_name" bson:"name"`
	AuthorAvatar string             `json:"author_avatar" bson:"avatar"`
	Text         string             `json:"text" bson:"text"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}
