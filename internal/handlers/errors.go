package handlers

import (
	"errors"
	"net/http"

	"github.com/ItsBhatt/devConnector/internal/posts"
	"github.com/labstack/echo/v4"
)

// mapPostError converts a post service error into an HTTP error. The cause is
// kept as the internal error so the request logger records it.
func mapPostError(err error) error {
	var httpErr *echo.HTTPError
	switch {
	case posts.IsValidationError(err):
		httpErr = echo.NewHTTPError(http.StatusBadRequest, "Text is required")
	case posts.IsNotFound(err):
		httpErr = echo.NewHTTPError(http.StatusNotFound, notFoundMessage(err))
	case posts.IsNotAuthorized(err):
		httpErr = echo.NewHTTPError(http.StatusForbidden, "User not authorized")
	case errors.Is(err, posts.ErrAlreadyLiked):
		httpErr = echo.NewHTTPError(http.StatusConflict, "Post already liked")
	case errors.Is(err, posts.ErrNotLiked):
		httpErr = echo.NewHTTPError(http.StatusConflict, "Post has not yet been liked")
	case posts.IsRetryable(err):
		httpErr = echo.NewHTTPError(http.StatusServiceUnavailable, "Post storage is temporarily unavailable")
	default:
		httpErr = echo.NewHTTPError(http.StatusInternalServerError, "Server error")
	}
	return httpErr.SetInternal(err)
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, posts.ErrNoPostsForUser):
		return "No posts for this user"
	case errors.Is(err, posts.ErrCommentNotFound):
		return "Comment does not exist"
	case errors.Is(err, posts.ErrUserNotFound):
		return "User not found"
	default:
		return "Post not found"
	}
}
