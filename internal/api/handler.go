package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/benzak-dev/benzak-api/internal/domain/dto"
	"github.com/benzak-dev/benzak-api/internal/service"
	"github.com/benzak-dev/benzak-api/internal/storage"
)

// Handler provides the HTTP handlers for reference data, price history and
// dynamics reports. One explicit handler per route; validation and response
// shaping live here, data access in the repository, grouping in the service.
type Handler struct {
	repo     storage.PricesRepository
	dynamics service.DynamicsService
}

func NewHandler(repo storage.PricesRepository, dynamics service.DynamicsService) *Handler {
	return &Handler{repo: repo, dynamics: dynamics}
}

// ListCurrencies godoc
// @Summary      List currencies
// @Description  Returns the currency reference catalog ordered by name
// @Tags         reference
// @Produce      json
// @Success      200  {array}   dto.CurrencyResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/currencies [get]
func (h *Handler) ListCurrencies(c *gin.Context) {
	currencies, err := h.repo.ListCurrencies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list currencies", err))
		return
	}

	out := make([]dto.CurrencyResponse, 0, len(currencies))
	for _, cur := range currencies {
		out = append(out, dto.NewCurrencyResponse(cur))
	}
	c.JSON(http.StatusOK, out)
}

// ListFuels godoc
// @Summary      List fuels
// @Description  Returns the fuel reference catalog ordered by name
// @Tags         reference
// @Produce      json
// @Success      200  {array}   dto.FuelResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/fuels [get]
func (h *Handler) ListFuels(c *gin.Context) {
	fuels, err := h.repo.ListFuels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list fuels", err))
		return
	}

	out := make([]dto.FuelResponse, 0, len(fuels))
	for _, f := range fuels {
		out = append(out, dto.NewFuelResponse(f))
	}
	c.JSON(http.StatusOK, out)
}

// ListPriceHistory godoc
// @Summary      List price observations
// @Description  Returns all recorded price observations, newest date first
// @Tags         price-history
// @Produce      json
// @Success      200  {array}   dto.PriceRecordResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Security     TokenAuth
// @Router       /api/v1/price-history [get]
func (h *Handler) ListPriceHistory(c *gin.Context) {
	records, err := h.repo.ListPrices(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list price history", err))
		return
	}

	out := make([]dto.PriceRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, dto.NewPriceRecordResponse(rec))
	}
	c.JSON(http.StatusOK, out)
}

// CreatePrice godoc
// @Summary      Record a price observation
// @Description  Appends one (date, fuel, currency, price) observation. The
// @Description  triple must be unique; a duplicate is rejected with 400 and
// @Description  leaves the original record unchanged.
// @Tags         price-history
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePriceRequest  true  "Observation"
// @Success      201   {object}  map[string]int64
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Security     TokenAuth
// @Router       /api/v1/price-history [post]
func (h *Handler) CreatePrice(c *gin.Context) {
	var req dto.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	at, err := service.ParseDate(req.At)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	id, err := h.repo.InsertPrice(c.Request.Context(), at, req.Fuel, req.Currency, req.Price)
	switch {
	case errors.Is(err, storage.ErrDuplicatePrice), errors.Is(err, storage.ErrBadReference):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to record price", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListDynamics godoc
// @Summary      List daily reports
// @Description  Returns one aggregated report per observation date, newest
// @Description  first. Fuels are ordered by name, prices by currency name.
// @Tags         dynamics
// @Produce      json
// @Success      200  {array}   dto.DailyReportResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Security     TokenAuth
// @Router       /api/v1/dynamics [get]
func (h *Handler) ListDynamics(c *gin.Context) {
	reports, err := h.dynamics.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build dynamics", err))
		return
	}

	out := make([]dto.DailyReportResponse, 0, len(reports))
	for _, rep := range reports {
		out = append(out, dto.NewDailyReportResponse(rep))
	}
	c.JSON(http.StatusOK, out)
}

// GetDynamics godoc
// @Summary      Get one daily report
// @Description  Returns the aggregated report for a single date
// @Tags         dynamics
// @Produce      json
// @Param        at   path      string  true  "Date in YYYY-MM-DD"  example(2024-01-01)
// @Success      200  {object}  dto.DailyReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Security     TokenAuth
// @Router       /api/v1/dynamics/{at} [get]
func (h *Handler) GetDynamics(c *gin.Context) {
	report, err := h.dynamics.ByDate(c.Request.Context(), c.Param("at"))
	switch {
	case errors.Is(err, service.ErrBadDate):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build dynamics", err))
		return
	case report == nil:
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no report for this date", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewDailyReportResponse(*report))
}
