package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unilink-et/backend/internal/models"
	"github.com/unilink-et/backend/internal/services"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	interactionService *services.InteractionService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(interactionService *services.InteractionService) *CommentHandler {
	return &CommentHandler{interactionService: interactionService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.interactionService.AddComment(c.Request().Context(), c.Param("post_id"), currentUserID, req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID retrieves all comments for a post, oldest first
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	comments, err := h.interactionService.ListComments(c.Request().Context(), c.Param("post_id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}
