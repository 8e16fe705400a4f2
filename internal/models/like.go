package models

// Like is a single user's endorsement of a post. A post holds at most one
// like per user.
type Like struct {
	UserID string `json:"user_id" bson:"user_id"`
}
