package handlers

import (
	"errors"
	"net/http"

	"github.com/ItsBhatt/devConnector/internal/middleware"
	"github.com/ItsBhatt/devConnector/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile) // own profile
	g.GET("/users/:id", h.GetUser)
}

// GetUser retrieves another user's profile by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	return h.respondWithUser(c, c.Param("id"))
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	return h.respondWithUser(c, middleware.UserID(c))
}

func (h *UserHandler) respondWithUser(c echo.Context, userID string) error {
	id, err := repositories.ParseUserID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}

	user, err := h.userRepository.GetUserByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error").SetInternal(err)
	}
	return c.JSON(http.StatusOK, user)
}
