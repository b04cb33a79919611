// Package alerts evaluates price observations against user alerts and
// forwards triggered events to the notification sink. An alert is
// conceptually Watching until it triggers; deactivation after a trigger is
// the collaborator's decision, not ours.
package alerts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dharmasatrya/flightadvisor/internal/models"
	"github.com/dharmasatrya/flightadvisor/internal/notify"
	"github.com/dharmasatrya/flightadvisor/internal/pricing"
	"github.com/dharmasatrya/flightadvisor/pkg/currency"
)

// TriggerReason says which condition fired an alert.
type TriggerReason string

const (
	ReasonTargetMet       TriggerReason = "target_met"
	ReasonSignificantDrop TriggerReason = "significant_drop"
)

// A drop of at least 5% from the previous observation triggers even when
// the target has not been reached.
const dropThresholdPercent = 5.0

// TriggerResult is the outcome of evaluating one price observation.
type TriggerResult struct {
	Triggered bool          `json:"triggered"`
	Reason    TriggerReason `json:"reason,omitempty"`
	Detail    string        `json:"detail,omitempty"`
}

// PriceAlertEvent is emitted when an alert triggers. Immutable once built.
type PriceAlertEvent struct {
	AlertID            int64     `json:"alert_id"`
	UserID             int64     `json:"user_id"`
	Route              string    `json:"route"`
	TargetPriceCents   int       `json:"target_price_cents"`
	CurrentPriceCents  int       `json:"current_price_cents"`
	PriceChangePercent float64   `json:"price_change_percent"`
	Timestamp          time.Time `json:"timestamp"`
	FlightLink         *string   `json:"flight_link,omitempty"`
}

// ShouldTrigger decides whether an observed price fires an alert. Reaching
// the absolute target wins over the relative-drop condition when both hold.
func ShouldTrigger(currentCents, targetCents int, previousCents *int) TriggerResult {
	if currentCents <= targetCents {
		return TriggerResult{
			Triggered: true,
			Reason:    ReasonTargetMet,
			Detail: fmt.Sprintf("Price dropped to %s, below target of %s",
				currency.FormatCents(currentCents, "USD"), currency.FormatCents(targetCents, "USD")),
		}
	}

	if previousCents != nil && pricing.IsSignificant(currentCents, *previousCents, dropThresholdPercent) {
		change := pricing.PercentChange(currentCents, *previousCents)
		if change < 0 {
			return TriggerResult{
				Triggered: true,
				Reason:    ReasonSignificantDrop,
				Detail: fmt.Sprintf("Price dropped %.1f%% to %s",
					-change, currency.FormatCents(currentCents, "USD")),
			}
		}
	}

	return TriggerResult{}
}

// BuildEvent constructs the event for a triggered alert. The price change
// is zero when no previous price is known.
func BuildEvent(update models.AlertUpdate, now time.Time) PriceAlertEvent {
	change := 0.0
	if update.PreviousPriceCents != nil {
		change = pricing.PercentChange(update.CurrentPriceCents, *update.PreviousPriceCents)
	}

	return PriceAlertEvent{
		AlertID:            update.AlertID,
		UserID:             update.UserID,
		Route:              update.Route,
		TargetPriceCents:   update.TargetPriceCents,
		CurrentPriceCents:  update.CurrentPriceCents,
		PriceChangePercent: change,
		Timestamp:          now,
		FlightLink:         update.FlightLink,
	}
}

// FormatMessage renders the notification body for a triggered event.
func FormatMessage(event PriceAlertEvent) string {
	savings := event.TargetPriceCents - event.CurrentPriceCents
	if savings < 0 {
		savings = 0
	}

	message := fmt.Sprintf(
		"Price Alert Triggered!\n\nRoute: %s\nCurrent Price: %s\nTarget Price: %s\nYou Save: %s\n\nPrice Change: %.1f%%\nTime: %s",
		event.Route,
		currency.FormatCents(event.CurrentPriceCents, "USD"),
		currency.FormatCents(event.TargetPriceCents, "USD"),
		currency.FormatCents(savings, "USD"),
		event.PriceChangePercent,
		event.Timestamp.Format(time.RFC1123),
	)
	if event.FlightLink != nil && *event.FlightLink != "" {
		message += "\n\nBook Now: " + *event.FlightLink
	}
	return message
}

// Engine evaluates batches of price updates and dispatches notifications
// for the ones that trigger.
type Engine struct {
	sink notify.Sink
	log  zerolog.Logger
	now  func() time.Time
}

func NewEngine(sink notify.Sink, log zerolog.Logger) *Engine {
	return &Engine{
		sink: sink,
		log:  log,
		now:  time.Now,
	}
}

// ProcessBatch evaluates each update independently, then dispatches
// notifications for the triggered events concurrently. A failed dispatch is
// logged and does not affect other events; every triggered event is
// returned regardless of delivery outcome.
func (e *Engine) ProcessBatch(ctx context.Context, updates []models.AlertUpdate) []PriceAlertEvent {
	triggered := make([]PriceAlertEvent, 0, len(updates))

	for _, update := range updates {
		result := ShouldTrigger(update.CurrentPriceCents, update.TargetPriceCents, update.PreviousPriceCents)
		if !result.Triggered {
			continue
		}
		triggered = append(triggered, BuildEvent(update, e.now()))
	}

	var wg sync.WaitGroup
	for _, event := range triggered {
		wg.Add(1)
		go func(event PriceAlertEvent) {
			defer wg.Done()
			title := "Price Alert: " + event.Route
			if err := e.sink.Send(ctx, title, FormatMessage(event)); err != nil {
				e.log.Error().Err(err).
					Int64("alert_id", event.AlertID).
					Str("route", event.Route).
					Msg("alert notification dispatch failed")
			}
		}(event)
	}
	wg.Wait()

	return triggered
}
