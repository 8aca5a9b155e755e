package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/SscSPs/acme_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// exchangeHandler converts money between currencies.
type exchangeHandler struct {
	exchangeService portssvc.MoneyExchangeSvc
}

func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.MoneyExchangeSvc) {
	h := &exchangeHandler{exchangeService: exchangeService}
	rg.GET("/exchange", h.exchange)
}

// exchange godoc
// @Summary Convert money
// @Description Converts an amount into the target currency, reusing a cached rate while it is fresh
// @Tags exchange
// @Produce json
// @Param amount query string true "Amount, e.g. 100.50"
// @Param currency query string true "Source currency (ISO 4217)"
// @Param target query string true "Target currency (ISO 4217)"
// @Success 200 {object} dto.ExchangeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse "Rate source unavailable"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /exchange [get]
func (h *exchangeHandler) exchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ExchangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	amount, err := decimal.NewFromString(q.Amount)
	if err != nil {
		logger.Warn("Invalid amount", slog.String("amount", q.Amount))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid amount"})
		return
	}

	money, err := domain.NewMoney(amount, q.Currency)
	if err != nil {
		respondServiceError(c, err, "exchange money")
		return
	}

	conversion, err := h.exchangeService.Exchange(c.Request.Context(), money, q.Target)
	if err != nil {
		respondServiceError(c, err, "exchange money")
		return
	}

	logger.Debug("Money exchanged", slog.String("source", conversion.Source.String()), slog.String("target", conversion.Target.String()), slog.Bool("from_cache", conversion.FromCache))
	c.JSON(http.StatusOK, dto.ToExchangeResponse(conversion))
}
