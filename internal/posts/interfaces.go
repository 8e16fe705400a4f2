package posts

import (
	"context"

	"github.com/ItsBhatt/devConnector/internal/models"
)

// Profile is the display snapshot copied onto posts and comments
type Profile struct {
	Name   string
	Avatar string
}

// Service defines the post aggregate operations exposed to transports.
// Every mutation runs as load -> pure transform -> save against the Repository.
type Service interface {
	// CreatePost snapshots the author's profile and stores a new post with no likes or comments
	CreatePost(ctx context.Context, authorID, text string) (*models.Post, error)

	// ListPosts returns every post, newest first
	ListPosts(ctx context.Context) ([]models.Post, error)

	// ListPostsByAuthor returns one author's posts, newest first.
	// Unknown authors and authors without posts both yield ErrNoPostsForUser.
	ListPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error)

	// GetPost returns a single post; malformed IDs are reported as ErrPostNotFound
	GetPost(ctx context.Context, postID string) (*models.Post, error)

	// DeletePost removes a post with its likes and comments. Only the author may delete.
	DeletePost(ctx context.Context, postID, userID string) error

	// LikePost adds the user's like at the front of the like list
	LikePost(ctx context.Context, postID, userID string) ([]models.Like, error)

	// UnlikePost removes the user's like
	UnlikePost(ctx context.Context, postID, userID string) ([]models.Like, error)

	// AddComment adds a comment at the front of the comment list
	AddComment(ctx context.Context, postID, userID, text string) ([]models.Comment, error)

	// DeleteComment removes a comment. Only the comment's author may delete it.
	DeleteComment(ctx context.Context, postID, commentID, userID string) ([]models.Comment, error)
}

// Repository defines the persistence contract for post aggregates
type Repository interface {
	// GetByID loads the whole post document.
	// Returns ErrPostNotFound for unknown or malformed IDs.
	GetByID(ctx context.Context, id string) (*models.Post, error)

	// ListAll returns every post
	ListAll(ctx context.Context) ([]models.Post, error)

	// ListByAuthor returns the posts written by one author
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)

	// Create inserts a new post
	Create(ctx context.Context, post *models.Post) error

	// Save replaces the likes and comments of a previously loaded post.
	// The write only succeeds if the stored version still equals post.Version;
	// otherwise ErrConcurrentModification is returned and nothing is written.
	// On success post.Version is advanced.
	Save(ctx context.Context, post *models.Post) error

	// Delete removes the post document
	Delete(ctx context.Context, post *models.Post) error
}

// UserDirectory resolves a user ID to its current display profile
type UserDirectory interface {
	// GetProfile returns ErrUserNotFound for unknown users
	GetProfile(ctx context.Context, userID string) (Profile, error)
}

// Notifier records engagement notifications for post authors
type Notifier interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
}
