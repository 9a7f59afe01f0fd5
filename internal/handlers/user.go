package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unilink-et/backend/internal/models"
	"github.com/unilink-et/backend/internal/repositories"
	"github.com/unilink-et/backend/internal/services"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository repositories.UserRepository
	resolver       *services.IdentityResolver
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, resolver *services.IdentityResolver) *UserHandler {
	return &UserHandler{userRepository: userRepo, resolver: resolver}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/users/:id", h.GetUser)
	g.PUT("/users/:id", h.UpdateProfile)
	g.DELETE("/users/:id", h.DeleteAccount)
}

// GetUser retrieves a user's public profile. The id may arrive in any of
// the circulating forms, so resolution goes through the identity resolver.
func (h *UserHandler) GetUser(c echo.Context) error {
	user := h.resolver.Resolve(c.Request().Context(), c.Param("id"))
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	return c.JSON(http.StatusOK, user.ToCompact())
}

// UpdateProfile updates the authenticated user's display fields
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	target := h.resolver.Resolve(c.Request().Context(), c.Param("id"))
	if target == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	if target.Key() != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this profile")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.userRepository.UpdateUser(c.Request().Context(), target.ID.Hex(), req.FullName, req.Email); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Profile updated"})
}

// DeleteAccount deletes the authenticated user's account
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	target := h.resolver.Resolve(c.Request().Context(), c.Param("id"))
	if target == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	if target.Key() != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this account")
	}

	if err := h.userRepository.DeleteUser(c.Request().Context(), target.ID.Hex()); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Account deleted"})
}
