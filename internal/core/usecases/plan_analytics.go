package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/core/ports"
	"github.com/ramana119/yatra/internal/pkg/metrics"
)

// PlanAnalytics consumes plan events from the work-queue stream and keeps a
// running per-operation tally. The tally feeds Prometheus; draining the queue
// is what keeps the work-queue stream from accumulating.
type PlanAnalytics struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewPlanAnalytics creates an empty tally.
func NewPlanAnalytics() *PlanAnalytics {
	return &PlanAnalytics{counts: make(map[string]int)}
}

// Run attaches the tally to the plan-event feed and blocks until the
// subscription is established. Delivery then continues on the subscriber's
// own goroutines.
func (a *PlanAnalytics) Run(ctx context.Context, events ports.EventSubscriber) error {
	return events.SubscribePlanEvents(ctx, a.HandlePlanEvent)
}

// HandlePlanEvent records one consumed plan event. An event without an
// operation is malformed and is rejected so the broker can redeliver it.
func (a *PlanAnalytics) HandlePlanEvent(ctx context.Context, event *domain.PlanEvent) error {
	if event.Operation == "" {
		return fmt.Errorf("plan event %s has no operation", event.PlanID)
	}

	a.mu.Lock()
	a.counts[event.Operation]++
	a.mu.Unlock()

	metrics.PlanEventsProcessed.WithLabelValues(event.Operation).Inc()
	slog.Debug("plan event processed",
		"plan_id", event.PlanID,
		"operation", event.Operation,
		"destinations", len(event.DestinationIDs),
	)
	return nil
}

// Totals returns a copy of the per-operation counts.
func (a *PlanAnalytics) Totals() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(map[string]int, len(a.counts))
	for op, n := range a.counts {
		out[op] = n
	}
	return out
}
