package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/SscSPs/acme_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// systemConfigurationHandler serves the configuration record.
type systemConfigurationHandler struct {
	configService portssvc.SystemConfigurationSvcFacade
}

func newSystemConfigurationHandler(cs portssvc.SystemConfigurationSvcFacade) *systemConfigurationHandler {
	return &systemConfigurationHandler{configService: cs}
}

// registerSystemConfigurationRoutes registers the administrator routes on admin
// and the read-only currency listing on v1.
func registerSystemConfigurationRoutes(v1, admin *gin.RouterGroup, configService portssvc.SystemConfigurationSvcFacade) {
	h := newSystemConfigurationHandler(configService)

	v1.GET("/system-configuration/currencies", h.listCurrencies)

	cfg := admin.Group("/system-configuration")
	{
		cfg.GET("", h.getConfiguration)
		cfg.PUT("", h.updateConfiguration)
	}
}

// getConfiguration godoc
// @Summary Get the system configuration
// @Description Returns base currency, accepted currencies, spam tiers and the exchange rate staleness window
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SystemConfigurationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/system-configuration [get]
func (h *systemConfigurationHandler) getConfiguration(c *gin.Context) {
	cfg, err := h.configService.GetSystemConfiguration(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "load system configuration")
		return
	}
	c.JSON(http.StatusOK, dto.ToSystemConfigurationResponse(cfg))
}

// updateConfiguration godoc
// @Summary Update the system configuration
// @Description Replaces the system configuration record (administrator only)
// @Tags admin
// @Accept json
// @Produce json
// @Param configuration body dto.UpdateSystemConfigurationRequest true "Configuration"
// @Success 200 {object} dto.SystemConfigurationResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/system-configuration [put]
func (h *systemConfigurationHandler) updateConfiguration(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	var req dto.UpdateSystemConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cfg, err := h.configService.UpdateSystemConfiguration(c.Request.Context(), principal, req)
	if err != nil {
		respondServiceError(c, err, "update system configuration")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("System configuration updated", slog.String("base_currency", cfg.BaseCurrency))
	c.JSON(http.StatusOK, dto.ToSystemConfigurationResponse(cfg))
}

// listCurrencies godoc
// @Summary List accepted currencies
// @Description Returns the base currency and the currencies money may be expressed in
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.CurrenciesResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /system-configuration/currencies [get]
func (h *systemConfigurationHandler) listCurrencies(c *gin.Context) {
	cfg, err := h.configService.GetSystemConfiguration(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.CurrenciesResponse{
		BaseCurrency:        cfg.BaseCurrency,
		AvailableCurrencies: cfg.AvailableCurrencies,
	})
}
