package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unilink-et/backend/internal/models"
	"github.com/unilink-et/backend/internal/services"
)

// ChatHandler handles direct-messaging HTTP requests
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// RegisterChatRoutes registers messaging-related routes
func (h *ChatHandler) RegisterChatRoutes(g *echo.Group) {
	g.POST("/messages", h.SendMessage)
	g.GET("/messages/:other_user_id", h.GetThread)
	g.GET("/conversations", h.GetConversations)
}

// SendMessage sends a direct message to another user
func (h *ChatHandler) SendMessage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.chatService.SendMessage(c.Request().Context(), currentUserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

// GetThread retrieves the authenticated user's message history with one
// other user, oldest first. Messages received in it are marked read.
func (h *ChatHandler) GetThread(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	messages, err := h.chatService.GetThread(c.Request().Context(), currentUserID, c.Param("other_user_id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

// GetConversations returns one entry per counterpart holding the most
// recent message exchanged with them.
func (h *ChatHandler) GetConversations(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	conversations, err := h.chatService.ListConversations(c.Request().Context(), currentUserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, conversations)
}
