package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/coin_converter/internal/core/ports/services"
	"github.com/SscSPs/coin_converter/internal/dto"
	"github.com/SscSPs/coin_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// converterHandler handles HTTP requests related to currency conversion.
type converterHandler struct {
	converterService portssvc.ConverterSvcFacade
}

// newConverterHandler creates a new converterHandler.
func newConverterHandler(cs portssvc.ConverterSvcFacade) *converterHandler {
	return &converterHandler{
		converterService: cs,
	}
}

// RegisterConverterRoutes registers routes related to currency conversion.
// Any extra handlers run before the converter handlers, e.g. rate limiting.
func RegisterConverterRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvcFacade, extra ...gin.HandlerFunc) {
	h := newConverterHandler(converterService)

	converter := rg.Group("/converter", extra...)
	{
		converter.GET("/convert-currency/:cents", h.convertCurrency)
		converter.GET("/convert-currency-to-coins/:cents", h.convertCurrencyToCoins)
		converter.GET("/convert-currency-to-bills/:cents", h.convertCurrencyToBills)
		converter.GET("/denominations", h.listDenominations)
	}
}

// bindCents binds and validates the {cents} path parameter, writing a 400 response on failure.
func (h *converterHandler) bindCents(c *gin.Context, logger *slog.Logger) (int64, bool) {
	var req dto.ConvertCurrencyRequest
	if err := c.ShouldBindUri(&req); err != nil {
		logger.Warn("Invalid cents path parameter", slog.String("cents", c.Param("cents")), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return 0, false
	}
	return req.Cents, true
}

// convertCurrency godoc
// @Summary Convert currency to bills and coins
// @Description Receive an amount of cents as input and return the currency organized in bills and coins.
// @Tags converter
// @Produce  json
// @Param   cents path int true "Amount in cents" minimum(1)
// @Success 200 {object} dto.CurrencyBillsAndCoinsResponse
// @Failure 400 {object} ErrorResponse "Invalid cents"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to convert currency"
// @Router /converter/convert-currency/{cents} [get]
func (h *converterHandler) convertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cents, ok := h.bindCents(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("cents", cents))
	conversion, err := h.converterService.ConvertCombined(c.Request.Context(), cents)
	if err != nil {
		respondServiceError(c, logger, err, "convert currency")
		return
	}

	logger.Info("Currency converted to bills and coins", slog.Int64("pieces", conversion.Pieces()))
	c.JSON(http.StatusOK, dto.ToCurrencyBillsAndCoinsResponse(conversion))
}

// convertCurrencyToCoins godoc
// @Summary Convert currency to coins
// @Description Receive an amount of cents as input and return the currency organized in coins.
// @Tags converter
// @Produce  json
// @Param   cents path int true "Amount in cents" minimum(1)
// @Success 200 {object} dto.CurrencyCoinsResponse
// @Failure 400 {object} ErrorResponse "Invalid cents"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to convert currency to coins"
// @Router /converter/convert-currency-to-coins/{cents} [get]
func (h *converterHandler) convertCurrencyToCoins(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cents, ok := h.bindCents(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("cents", cents))
	conversion, err := h.converterService.ConvertToCoins(c.Request.Context(), cents)
	if err != nil {
		respondServiceError(c, logger, err, "convert currency to coins")
		return
	}

	logger.Info("Currency converted to coins", slog.Int64("pieces", conversion.Coins.Pieces()))
	c.JSON(http.StatusOK, dto.ToCurrencyCoinsResponse(conversion))
}

// convertCurrencyToBills godoc
// @Summary Convert currency to bills
// @Description Receive an amount of cents as input and return the currency organized in bills, plus the cents bills cannot cover.
// @Tags converter
// @Produce  json
// @Param   cents path int true "Amount in cents" minimum(1)
// @Success 200 {object} dto.CurrencyBillsResponse
// @Failure 400 {object} ErrorResponse "Invalid cents"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 500 {object} ErrorResponse "Failed to convert currency to bills"
// @Router /converter/convert-currency-to-bills/{cents} [get]
func (h *converterHandler) convertCurrencyToBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cents, ok := h.bindCents(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("cents", cents))
	conversion, err := h.converterService.ConvertToBills(c.Request.Context(), cents)
	if err != nil {
		respondServiceError(c, logger, err, "convert currency to bills")
		return
	}

	logger.Info("Currency converted to bills",
		slog.Int64("pieces", conversion.Bills.Pieces()),
		slog.Int64("remainder_cents", conversion.RemainderCents))
	c.JSON(http.StatusOK, dto.ToCurrencyBillsResponse(conversion))
}

// listDenominations godoc
// @Summary List denominations
// @Description Lists the bills and coins used by the converter, largest first.
// @Tags converter
// @Produce  json
// @Success 200 {object} dto.DenominationsResponse
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Router /converter/denominations [get]
func (h *converterHandler) listDenominations(c *gin.Context) {
	bills, coins := h.converterService.ListDenominations(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToDenominationsResponse(bills, coins))
}
