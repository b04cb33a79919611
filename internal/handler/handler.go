package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightadvisor/internal/alerts"
	"github.com/dharmasatrya/flightadvisor/internal/classifier"
	"github.com/dharmasatrya/flightadvisor/internal/history"
	"github.com/dharmasatrya/flightadvisor/internal/intelligence"
	"github.com/dharmasatrya/flightadvisor/internal/models"
	"github.com/dharmasatrya/flightadvisor/internal/pricing"
	"github.com/dharmasatrya/flightadvisor/internal/redemption"
)

// Handler exposes the scoring engine as stateless request/response
// endpoints. All state lives in the injected collaborators.
type Handler struct {
	store    history.Store
	balances history.BalanceSource
	engine   *alerts.Engine
}

func New(store history.Store, balances history.BalanceSource, engine *alerts.Engine) *Handler {
	return &Handler{
		store:    store,
		balances: balances,
		engine:   engine,
	}
}

func badRequest(c echo.Context, kind string, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   kind,
		Message: err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func bindError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_request",
		Message: "Failed to parse request body: " + err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func (h *Handler) Classify(c echo.Context) error {
	var req models.ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "validation_error", err)
	}

	return c.JSON(http.StatusOK, classifier.Classify(req.Flight))
}

func (h *Handler) PriceChange(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.PriceChangeRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "validation_error", err)
	}

	previous, found, err := h.store.LastPrice(ctx, req.Route)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "history_error",
			Message: "Failed to read price history: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	resp := models.PriceChangeResponse{
		Route:             req.Route,
		CurrentPriceCents: req.CurrentPriceCents,
	}
	if found {
		resp.PreviousPriceCents = &previous
		resp.ChangePercent = pricing.PercentChange(req.CurrentPriceCents, previous)
		resp.Significant = pricing.IsSignificant(req.CurrentPriceCents, previous, req.ThresholdPercent)
	}

	if err := h.store.RecordPrice(ctx, req.Route, req.CurrentPriceCents); err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "history_error",
			Message: "Failed to record price: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Optimize(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.OptimizeRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "validation_error", err)
	}

	cabin, err := models.ParseCabinClass(req.CabinClass)
	if err != nil {
		return badRequest(c, "validation_error", err)
	}

	points := 0
	switch {
	case req.UserPoints != nil:
		points = *req.UserPoints
	case req.UserID != "":
		points, err = h.balances.Balance(ctx, req.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "balance_error",
				Message: "Failed to read point balance: " + err.Error(),
				Code:    http.StatusInternalServerError,
			})
		}
	}

	result, err := redemption.Optimize(redemption.Input{
		FlightID:       req.FlightID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		CashPriceCents: req.CashPriceCents,
		International:  req.International,
		Cabin:          cabin,
		Departure:      req.Departure(),
		UserPoints:     points,
	})
	if err != nil {
		return badRequest(c, "validation_error", err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) UpgradeOpportunities(c echo.Context) error {
	var req models.UpgradeRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "validation_error", err)
	}

	return c.JSON(http.StatusOK, intelligence.DetectUpgradeOpportunities(req.Flights))
}

func (h *Handler) DelayRisk(c echo.Context) error {
	var req models.DelayRiskRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "validation_error", err)
	}

	season, err := models.ParseSeason(req.Season)
	if err != nil {
		return badRequest(c, "validation_error", err)
	}

	return c.JSON(http.StatusOK, intelligence.DelayRisk(req.Airline, req.Route, req.Departure, season))
}

func (h *Handler) MilesAccrual(c echo.Context) error {
	var req models.MilesRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "validation_error", err)
	}

	status, err := models.ParseEliteStatus(req.EliteStatus)
	if err != nil {
		return badRequest(c, "validation_error", err)
	}

	return c.JSON(http.StatusOK, intelligence.MilesAccrual(req.DistanceMiles, req.BasePriceCents, status, req.PromotionMultiplier))
}

type processAlertsResponse struct {
	TriggeredEvents []alerts.PriceAlertEvent `json:"triggered_events"`
	Stats           alerts.Stats             `json:"stats"`
}

func (h *Handler) ProcessAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.ProcessAlertsRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, "validation_error", err)
	}

	triggered := h.engine.ProcessBatch(ctx, req.Updates)

	return c.JSON(http.StatusOK, processAlertsResponse{
		TriggeredEvents: triggered,
		Stats:           alerts.CalculateStats(triggered),
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
