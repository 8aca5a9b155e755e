package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/SscSPs/acme_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

type chimpumHandler struct {
	chimpumService portssvc.ChimpumSvcFacade
}

func registerChimpumRoutes(inventor *gin.RouterGroup, chimpumService portssvc.ChimpumSvcFacade) {
	h := &chimpumHandler{chimpumService: chimpumService}

	inventor.POST("/items/:itemID/chimpums", h.createChimpum)

	chimpums := inventor.Group("/chimpums")
	{
		chimpums.GET("", h.listMyChimpums)
		chimpums.GET("/:chimpumID", h.getMyChimpum)
		chimpums.DELETE("/:chimpumID", h.deleteChimpum)
	}
}

// createChimpum godoc
// @Summary Create a chimpum
// @Description Attaches a chimpum to one of the caller's items
// @Tags chimpums
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Param chimpum body dto.CreateChimpumRequest true "Chimpum details"
// @Success 201 {object} dto.ChimpumResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "Rate source unavailable"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/items/{itemID}/chimpums [post]
func (h *chimpumHandler) createChimpum(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	var req dto.CreateChimpumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	chimpum, err := h.chimpumService.CreateChimpum(c.Request.Context(), principal, c.Param("itemID"), req)
	if err != nil {
		respondServiceError(c, err, "create chimpum")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Chimpum created", slog.String("chimpum_id", chimpum.ChimpumID), slog.String("item_id", chimpum.ItemID))
	c.JSON(http.StatusCreated, dto.ToChimpumResponse(chimpum))
}

// listMyChimpums godoc
// @Summary List my chimpums
// @Tags chimpums
// @Produce json
// @Success 200 {array} dto.ChimpumResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/chimpums [get]
func (h *chimpumHandler) listMyChimpums(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	chimpums, err := h.chimpumService.ListMyChimpums(c.Request.Context(), principal)
	if err != nil {
		respondServiceError(c, err, "list chimpums")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChimpumResponse(chimpums))
}

// getMyChimpum godoc
// @Summary Show one of my chimpums
// @Tags chimpums
// @Produce json
// @Param chimpumID path string true "Chimpum ID"
// @Success 200 {object} dto.ChimpumResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/chimpums/{chimpumID} [get]
func (h *chimpumHandler) getMyChimpum(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	chimpum, err := h.chimpumService.GetMyChimpum(c.Request.Context(), principal, c.Param("chimpumID"))
	if err != nil {
		respondServiceError(c, err, "get chimpum")
		return
	}
	c.JSON(http.StatusOK, dto.ToChimpumResponse(chimpum))
}

// deleteChimpum godoc
// @Summary Delete a chimpum
// @Tags chimpums
// @Param chimpumID path string true "Chimpum ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/chimpums/{chimpumID} [delete]
func (h *chimpumHandler) deleteChimpum(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	if err := h.chimpumService.DeleteChimpum(c.Request.Context(), principal, c.Param("chimpumID")); err != nil {
		respondServiceError(c, err, "delete chimpum")
		return
	}
	c.Status(http.StatusNoContent)
}
