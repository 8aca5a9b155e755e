package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/SscSPs/acme_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// itemHandler handles HTTP requests related to items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: is}
}

// registerItemRoutes registers the public catalogue on v1 and the owner
// routes on the inventor group.
func registerItemRoutes(v1, inventor *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	v1.GET("/items", h.listPublishedItems)

	items := inventor.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listMyItems)
		items.GET("/:itemID", h.getMyItem)
		items.POST("/:itemID/publish", h.publishItem)
		items.DELETE("/:itemID", h.deleteItem)
	}
}

// createItem godoc
// @Summary Create an item
// @Description Registers a new unpublished component or tool; the retail price is also stored in the base currency
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "Rate source unavailable"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), principal, req)
	if err != nil {
		respondServiceError(c, err, "create item")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Item created", slog.String("item_id", item.ItemID), slog.String("code", item.Code))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// listMyItems godoc
// @Summary List my items
// @Tags items
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/items [get]
func (h *itemHandler) listMyItems(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	items, err := h.itemService.ListMyItems(c.Request.Context(), principal)
	if err != nil {
		respondServiceError(c, err, "list items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListItemResponse(items))
}

// getMyItem godoc
// @Summary Show one of my items
// @Tags items
// @Produce json
// @Param itemID path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/items/{itemID} [get]
func (h *itemHandler) getMyItem(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	item, err := h.itemService.GetMyItem(c.Request.Context(), principal, c.Param("itemID"))
	if err != nil {
		respondServiceError(c, err, "get item")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// publishItem godoc
// @Summary Publish an item
// @Description Re-validates the item and makes it visible in the public catalogue
// @Tags items
// @Produce json
// @Param itemID path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/items/{itemID}/publish [post]
func (h *itemHandler) publishItem(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	item, err := h.itemService.PublishItem(c.Request.Context(), principal, c.Param("itemID"))
	if err != nil {
		respondServiceError(c, err, "publish item")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Item published", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an item
// @Description Deletes an unpublished item together with its chimpums
// @Tags items
// @Param itemID path string true "Item ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/items/{itemID} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), principal, c.Param("itemID")); err != nil {
		respondServiceError(c, err, "delete item")
		return
	}
	c.Status(http.StatusNoContent)
}

// listPublishedItems godoc
// @Summary List published items
// @Description Lists the published components or tools
// @Tags items
// @Produce json
// @Param type query string true "Item type" Enums(COMPONENT, TOOL)
// @Success 200 {array} dto.ItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /items [get]
func (h *itemHandler) listPublishedItems(c *gin.Context) {
	var q dto.ListItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	items, err := h.itemService.ListPublishedItems(c.Request.Context(), q.Type)
	if err != nil {
		respondServiceError(c, err, "list items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListItemResponse(items))
}
