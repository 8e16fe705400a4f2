package posts

import "errors"

var (
	// ErrEmptyText indicates post or comment text is missing or blank
	ErrEmptyText = errors.New("text is required")

	// ErrPostNotFound indicates the post doesn't exist or the ID is malformed
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound indicates the comment doesn't exist on the post
	ErrCommentNotFound = errors.New("comment does not exist")

	// ErrUserNotFound indicates the user is unknown to the user directory
	ErrUserNotFound = errors.New("user not found")

	// ErrNoPostsForUser is returned when listing by author yields nothing,
	// whether the author is unknown or simply has no posts
	ErrNoPostsForUser = errors.New("no posts for this user")

	// ErrNotAuthorized indicates the actor is not the author of the post or comment
	ErrNotAuthorized = errors.New("user not authorized")

	// ErrAlreadyLiked indicates the user already likes the post
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrNotLiked indicates the user has not liked the post
	ErrNotLiked = errors.New("post has not yet been liked")

	// ErrConcurrentModification indicates the post was saved by another
	// operation between load and save
	ErrConcurrentModification = errors.New("post was modified by another operation")

	// ErrStore indicates a transient persistence failure
	ErrStore = errors.New("post store unavailable")
)

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyText)
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrNoPostsForUser)
}

// IsNotAuthorized checks if an error is an ownership failure
func IsNotAuthorized(err error) bool {
	return errors.Is(err, ErrNotAuthorized)
}

// IsConflict checks if an error is a like/unlike applied to an already satisfied state
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyLiked) ||
		errors.Is(err, ErrNotLiked)
}

// IsRetryable reports whether the caller may retry the operation.
// Only store failures qualify; every other kind is final for the request.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStore) ||
		errors.Is(err, ErrConcurrentModification)
}
