package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unilink-et/backend/internal/models"
	"github.com/unilink-et/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
)

// MarketplaceHandler handles HTTP requests related to listings
type MarketplaceHandler struct {
	marketplaceRepository repositories.MarketplaceRepository
}

// NewMarketplaceHandler creates a new MarketplaceHandler
func NewMarketplaceHandler(marketplaceRepo repositories.MarketplaceRepository) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceRepository: marketplaceRepo}
}

// RegisterMarketplaceRoutes registers marketplace-related routes
func (h *MarketplaceHandler) RegisterMarketplaceRoutes(g *echo.Group) {
	g.POST("/marketplace", h.CreateItem)
	g.GET("/marketplace", h.GetItems)
	g.GET("/marketplace/:id", h.GetItem)
	g.PUT("/marketplace/:id", h.UpdateItem)
	g.DELETE("/marketplace/:id", h.DeleteItem)
}

// CreateItem creates a new listing owned by the authenticated user
func (h *MarketplaceHandler) CreateItem(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item := &models.MarketplaceItem{
		SellerID:     currentUserID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Category:     req.Category,
		Condition:    req.Condition,
		IsNegotiable: req.IsNegotiable,
	}
	if err := h.marketplaceRepository.CreateItem(c.Request().Context(), item); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

// GetItems retrieves active listings, optionally filtered by category
func (h *MarketplaceHandler) GetItems(c echo.Context) error {
	items, err := h.marketplaceRepository.GetActiveItems(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetItem retrieves a single listing by ID
func (h *MarketplaceHandler) GetItem(c echo.Context) error {
	item, err := h.marketplaceRepository.GetItemByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// UpdateItem applies a partial update to a listing the user owns
func (h *MarketplaceHandler) UpdateItem(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	item, err := h.marketplaceRepository.GetItemByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if item.SellerID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this listing")
	}

	var req models.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updates := bson.M{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageURL != "" {
		updates["imageUrl"] = req.ImageURL
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Condition != "" {
		updates["condition"] = req.Condition
	}
	if req.IsNegotiable != nil {
		updates["isNegotiable"] = *req.IsNegotiable
	}
	if len(updates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No fields to update")
	}

	if err := h.marketplaceRepository.UpdateItem(c.Request().Context(), c.Param("id"), updates); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Listing updated"})
}

// DeleteItem soft-deletes a listing the user owns
func (h *MarketplaceHandler) DeleteItem(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	item, err := h.marketplaceRepository.GetItemByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	if item.SellerID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this listing")
	}

	if err := h.marketplaceRepository.DeactivateItem(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
