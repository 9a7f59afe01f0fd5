package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unilink-et/backend/internal/services"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	interactionService *services.InteractionService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(interactionService *services.InteractionService) *LikeHandler {
	return &LikeHandler{interactionService: interactionService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.ToggleLike)
}

// ToggleLike flips the authenticated user's like on a post. Repeated
// calls alternate the state; the response always carries the recounted
// like total.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	result, err := h.interactionService.ToggleLike(c.Request().Context(), c.Param("post_id"), currentUserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}
