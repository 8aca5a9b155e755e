package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/SscSPs/acme_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// patronageHandler serves both sides of a patronage: the patron who
// proposes it and the inventor who decides on it.
type patronageHandler struct {
	patronageService portssvc.PatronageSvcFacade
}

func newPatronageHandler(ps portssvc.PatronageSvcFacade) *patronageHandler {
	return &patronageHandler{patronageService: ps}
}

func registerPatronageRoutes(patron, inventor *gin.RouterGroup, patronageService portssvc.PatronageSvcFacade) {
	h := newPatronageHandler(patronageService)

	proposals := patron.Group("/patronages")
	{
		proposals.POST("", h.createPatronage)
		proposals.GET("", h.listMyPatronages)
		proposals.PUT("/:patronageID", h.updatePatronage)
		proposals.POST("/:patronageID/publish", h.publishPatronage)
	}

	received := inventor.Group("/patronages")
	{
		received.GET("", h.listReceivedPatronages)
		received.POST("/:patronageID/decision", h.decidePatronage)
	}
}

// createPatronage godoc
// @Summary Propose a patronage
// @Description Creates an unpublished patronage proposal addressed to an inventor
// @Tags patronages
// @Accept json
// @Produce json
// @Param patronage body dto.PatronageRequest true "Patronage details"
// @Success 201 {object} dto.PatronageResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /patron/patronages [post]
func (h *patronageHandler) createPatronage(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	var req dto.PatronageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patronage, err := h.patronageService.CreatePatronage(c.Request.Context(), principal, req)
	if err != nil {
		respondServiceError(c, err, "create patronage")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Patronage proposed", slog.String("patronage_id", patronage.PatronageID), slog.String("inventor_id", patronage.InventorID))
	c.JSON(http.StatusCreated, dto.ToPatronageResponse(patronage))
}

// updatePatronage godoc
// @Summary Update a patronage
// @Description Edits an unpublished patronage owned by the caller
// @Tags patronages
// @Accept json
// @Produce json
// @Param patronageID path string true "Patronage ID"
// @Param patronage body dto.PatronageRequest true "Patronage details"
// @Success 200 {object} dto.PatronageResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /patron/patronages/{patronageID} [put]
func (h *patronageHandler) updatePatronage(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	var req dto.PatronageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patronage, err := h.patronageService.UpdatePatronage(c.Request.Context(), principal, c.Param("patronageID"), req)
	if err != nil {
		respondServiceError(c, err, "update patronage")
		return
	}
	c.JSON(http.StatusOK, dto.ToPatronageResponse(patronage))
}

// publishPatronage godoc
// @Summary Publish a patronage
// @Description Re-validates the proposal and makes it visible to the inventor
// @Tags patronages
// @Produce json
// @Param patronageID path string true "Patronage ID"
// @Success 200 {object} dto.PatronageResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /patron/patronages/{patronageID}/publish [post]
func (h *patronageHandler) publishPatronage(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	patronage, err := h.patronageService.PublishPatronage(c.Request.Context(), principal, c.Param("patronageID"))
	if err != nil {
		respondServiceError(c, err, "publish patronage")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Patronage published", slog.String("patronage_id", patronage.PatronageID))
	c.JSON(http.StatusOK, dto.ToPatronageResponse(patronage))
}

// listMyPatronages godoc
// @Summary List my patronages
// @Tags patronages
// @Produce json
// @Success 200 {array} dto.PatronageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /patron/patronages [get]
func (h *patronageHandler) listMyPatronages(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	patronages, err := h.patronageService.ListMyPatronages(c.Request.Context(), principal)
	if err != nil {
		respondServiceError(c, err, "list patronages")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPatronageResponse(patronages))
}

// listReceivedPatronages godoc
// @Summary List received patronages
// @Description Lists the published patronages addressed to the calling inventor
// @Tags patronages
// @Produce json
// @Success 200 {array} dto.PatronageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/patronages [get]
func (h *patronageHandler) listReceivedPatronages(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	patronages, err := h.patronageService.ListReceivedPatronages(c.Request.Context(), principal)
	if err != nil {
		respondServiceError(c, err, "list patronages")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPatronageResponse(patronages))
}

// decidePatronage godoc
// @Summary Accept or deny a patronage
// @Tags patronages
// @Accept json
// @Produce json
// @Param patronageID path string true "Patronage ID"
// @Param decision body dto.DecidePatronageRequest true "Decision"
// @Success 200 {object} dto.PatronageResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventor/patronages/{patronageID}/decision [post]
func (h *patronageHandler) decidePatronage(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	var req dto.DecidePatronageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patronage, err := h.patronageService.DecidePatronage(c.Request.Context(), principal, c.Param("patronageID"), req.Status)
	if err != nil {
		respondServiceError(c, err, "decide patronage")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Patronage decided", slog.String("patronage_id", patronage.PatronageID), slog.String("status", string(patronage.Status)))
	c.JSON(http.StatusOK, dto.ToPatronageResponse(patronage))
}
