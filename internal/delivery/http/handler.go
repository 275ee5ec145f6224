package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shelfchef/backend/internal/domain"
	"github.com/shelfchef/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	suggestions *usecase.SuggestionService
	reconcile   *usecase.ReconcileService
	matcher     *usecase.MatcherService
	inventory   domain.InventoryRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(
	suggestions *usecase.SuggestionService,
	reconcile *usecase.ReconcileService,
	matcher *usecase.MatcherService,
	inventory domain.InventoryRepository,
) *Handler {
	return &Handler{
		suggestions: suggestions,
		reconcile:   reconcile,
		matcher:     matcher,
		inventory:   inventory,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shelfchef-backend",
		"version": "1.0.0",
	})
}

// matchRequest is the body for ad-hoc recipe matching. Owned is optional;
// when absent the user's stored inventory is used.
type matchRequest struct {
	Ingredients []domain.RecipeIngredient `json:"ingredients" binding:"required"`
	Owned       []string                  `json:"owned"`
}

// MatchRecipe scores a caller-supplied ingredient list against an owned
// ingredient list (or the stored inventory)
func (h *Handler) MatchRecipe(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	owned := req.Owned
	if owned == nil {
		var err error
		owned, err = h.ownedNames(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inventory"})
			return
		}
	}

	result := h.matcher.ComputeRecipeMatch(req.Ingredients, owned)
	c.JSON(http.StatusOK, result)
}

// SuggestRecipes returns catalog recipes ranked by inventory coverage
func (h *Handler) SuggestRecipes(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	owned, err := h.ownedNames(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inventory"})
		return
	}

	suggestions, err := h.suggestions.SuggestRecipes(c.Request.Context(), owned, limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// MatchRecipeByID fetches one catalog recipe and scores it against inventory
func (h *Handler) MatchRecipeByID(c *gin.Context) {
	owned, err := h.ownedNames(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inventory"})
		return
	}

	suggestion, err := h.suggestions.MatchRecipe(c.Request.Context(), c.Param("id"), owned)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

// ListInventory returns all inventory items
func (h *Handler) ListInventory(c *gin.Context) {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inventory"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// addItemRequest is the body for adding an inventory item
type addItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity"`
}

// AddInventoryItem stores a new inventory item
func (h *Handler) AddInventoryItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	item := domain.InventoryItem{
		Name:     req.Name,
		Quantity: req.Quantity,
	}
	if err := h.inventory.Add(c.Request.Context(), &item); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveInventoryItem deletes an inventory item by ID
func (h *Handler) RemoveInventoryItem(c *gin.Context) {
	if err := h.inventory.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// reconcileRequest is the body for receipt reconciliation. When Commit is
// set, unmatched lines that still name an ingredient are added to inventory.
type reconcileRequest struct {
	Lines  []string `json:"lines" binding:"required"`
	Commit bool     `json:"commit"`
}

// ReconcileReceipt matches OCR'd receipt lines against the inventory
func (h *Handler) ReconcileReceipt(c *gin.Context) {
	var req reconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if req.Commit {
		results, added, err := h.reconcile.CommitReceipt(c.Request.Context(), req.Lines)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"lines": results, "added": added})
		return
	}

	results, err := h.reconcile.ReconcileReceipt(c.Request.Context(), req.Lines)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": results})
}

// ownedNames loads the inventory item names used as the owned side of a
// matching pass
func (h *Handler) ownedNames(c *gin.Context) ([]string, error) {
	items, err := h.inventory.List(c.Request.Context())
	if err != nil {
		return nil, err
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names, nil
}

// writeServiceError maps domain errors to HTTP status codes
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRecipeNotFound), errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCatalogFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": "recipe catalog unavailable"})
	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
