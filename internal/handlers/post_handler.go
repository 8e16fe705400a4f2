package handlers

import (
	"net/http"

	"github.com/ItsBhatt/devConnector/internal/middleware"
	"github.com/ItsBhatt/devConnector/internal/models"
	"github.com/ItsBhatt/devConnector/internal/posts"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts, their likes and comments
type PostHandler struct {
	postService posts.Service
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService posts.Service) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/user/:user_id", h.GetPostsByUser)
	g.GET("/posts/:id", h.GetPost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.PUT("/posts/:id/like", h.LikePost)
	g.PUT("/posts/:id/unlike", h.UnlikePost)
	g.PUT("/posts/:id/comments", h.AddComment)
	g.DELETE("/posts/:id/comments/:comment_id", h.DeleteComment)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(c.Request().Context(), middleware.UserID(c), req.Text)
	if err != nil {
		return mapPostError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetPosts retrieves all posts, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	list, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		return mapPostError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetPostsByUser retrieves the posts of one author, newest first
func (h *PostHandler) GetPostsByUser(c echo.Context) error {
	list, err := h.postService.ListPostsByAuthor(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return mapPostError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postService.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapPostError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post owned by the authenticated user
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postService.DeletePost(c.Request().Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		return mapPostError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post removed"})
}

// LikePost likes a post and returns the updated likes
func (h *PostHandler) LikePost(c echo.Context) error {
	likes, err := h.postService.LikePost(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return mapPostError(err)
	}
	return c.JSON(http.StatusOK, likes)
}

// UnlikePost removes the authenticated user's like and returns the updated likes
func (h *PostHandler) UnlikePost(c echo.Context) error {
	likes, err := h.postService.UnlikePost(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return mapPostError(err)
	}
	return c.JSON(http.StatusOK, likes)
}

// AddComment comments on a post and returns the updated comments
func (h *PostHandler) AddComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comments, err := h.postService.AddComment(c.Request().Context(), c.Param("id"), middleware.UserID(c), req.Text)
	if err != nil {
		return mapPostError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// DeleteComment deletes a comment written by the authenticated user
func (h *PostHandler) DeleteComment(c echo.Context) error {
	comments, err := h.postService.DeleteComment(c.Request().Context(), c.Param("id"), c.Param("comment_id"), middleware.UserID(c))
	if err != nil {
		return mapPostError(err)
	}
	return c.JSON(http.StatusOK, comments)
}
