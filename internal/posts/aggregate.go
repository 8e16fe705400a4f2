package posts

import (
	"strings"
	"time"

	"github.com/ItsBhatt/devConnector/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The functions in this file are the post aggregate's transforms. Each takes a
// post by value and returns a new post; the input post and its slices are
// never modified, so a failed or abandoned operation leaves no trace.

// NewPost builds a post with empty likes and comments
func NewPost(id primitive.ObjectID, authorID string, author Profile, text string, now time.Time) (models.Post, error) {
	if err := validateText(text); err != nil {
		return models.Post{}, err
	}
	return models.Post{
		ID:           id,
		AuthorID:     authorID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Text:         text,
		Likes:        []models.Like{},
		Comments:     []models.Comment{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NewComment builds a comment authored by userID
func NewComment(id primitive.ObjectID, userID string, author Profile, text string, now time.Time) (models.Comment, error) {
	if err := validateText(text); err != nil {
		return models.Comment{}, err
	}
	return models.Comment{
		ID:           id,
		AuthorID:     userID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Text:         text,
		CreatedAt:    now,
	}, nil
}

// CanDelete checks that userID owns the post
func CanDelete(post models.Post, userID string) error {
	if post.AuthorID != userID {
		return ErrNotAuthorized
	}
	return nil
}

// HasLiked reports whether userID has a like on the post
func HasLiked(post models.Post, userID string) bool {
	return indexOfLike(post.Likes, userID) >= 0
}

// Like adds userID's like at the front of the like list
func Like(post models.Post, userID string) (models.Post, error) {
	if HasLiked(post, userID) {
		return models.Post{}, ErrAlreadyLiked
	}
	post.Likes = prependLike(post.Likes, models.Like{UserID: userID})
	return post, nil
}

// Unlike removes userID's like
func Unlike(post models.Post, userID string) (models.Post, error) {
	i := indexOfLike(post.Likes, userID)
	if i < 0 {
		return models.Post{}, ErrNotLiked
	}
	post.Likes = removeLikeAt(post.Likes, i)
	return post, nil
}

// AddComment puts comment at the front of the comment list
func AddComment(post models.Post, comment models.Comment) (models.Post, error) {
	if err := validateText(comment.Text); err != nil {
		return models.Post{}, err
	}
	post.Comments = prependComment(post.Comments, comment)
	return post, nil
}

// DeleteComment removes the comment with commentID if userID wrote it
func DeleteComment(post models.Post, commentID, userID string) (models.Post, error) {
	i := indexOfComment(post.Comments, commentID)
	if i < 0 {
		return models.Post{}, ErrCommentNotFound
	}
	if post.Comments[i].AuthorID != userID {
		return models.Post{}, ErrNotAuthorized
	}
	post.Comments = removeCommentAt(post.Comments, i)
	return post, nil
}

func validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	return nil
}

func indexOfLike(likes []models.Like, userID string) int {
	for i, l := range likes {
		if l.UserID == userID {
			return i
		}
	}
	return -1
}

// indexOfComment returns -1 for unknown or malformed IDs
func indexOfComment(comments []models.Comment, commentID string) int {
	id, err := primitive.ObjectIDFromHex(commentID)
	if err != nil {
		return -1
	}
	for i, c := range comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func prependLike(likes []models.Like, like models.Like) []models.Like {
	out := make([]models.Like, 0, len(likes)+1)
	out = append(out, like)
	return append(out, likes...)
}

func removeLikeAt(likes []models.Like, i int) []models.Like {
	out := make([]models.Like, 0, len(likes)-1)
	out = append(out, likes[:i]...)
	return append(out, likes[i+1:]...)
}

func prependComment(comments []models.Comment, comment models.Comment) []models.Comment {
	out := make([]models.Comment, 0, len(comments)+1)
	out = append(out, comment)
	return append(out, comments...)
}

func removeCommentAt(comments []models.Comment, i int) []models.Comment {
	out := make([]models.Comment, 0, len(comments)-1)
	out = append(out, comments[:i]...)
	return append(out, comments[i+1:]...)
}
