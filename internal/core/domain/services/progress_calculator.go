package services

import (
	"math"
	"time"

	"delivery/internal/core/domain/model/order"
)

// TrackingStep is a derived, per-status display descriptor used to render
// order progress. Steps are computed fresh from an Order on every call and
// never persisted.
type TrackingStep struct {
	// Status is the canonical stage this step describes.
	Status order.Status
	// Label is the human-readable name of the stage.
	Label string
	// Completed reports whether the order has reached this stage.
	Completed bool
	// Current reports whether this is the order's present stage.
	Current bool
	// Timestamp is when the stage was reached, when known.
	Timestamp *time.Time
}

// Progress is the derived tracking view of an order: a completion percentage
// and one step descriptor per canonical stage.
type Progress struct {
	// Percentage is the completion percentage in [0, 100].
	Percentage int
	// Steps holds one descriptor per canonical stage, in sequence order.
	Steps []TrackingStep
}

// ProgressCalculator derives tracking progress from an order's status and
// stage timestamps. It is a pure, stateless domain service.
//
// Rules:
//   - Percentage = round(ordinal / (N-1) * 100) over the N canonical stages
//   - Cancelled orders keep the percentage reached at cancellation time,
//     based on the last stage with a recorded timestamp
//   - Steps are marked completed up to the last consistent timestamp marker;
//     a gap in the timestamp sequence truncates the completed range instead
//     of failing (data-integrity degradation, not an error)
//   - Exactly one step is current for non-cancelled orders; cancelled orders
//     have no current step
//   - An unrecognized status is an error, never a silent default
type ProgressCalculator struct{}

// NewProgressCalculator creates a new ProgressCalculator instance.
func NewProgressCalculator() ProgressCalculator {
	return ProgressCalculator{}
}

// Calculate derives the tracking progress for the given order.
// Returns an error if the order is invalid or its status is not a
// recognized enum value.
func (p ProgressCalculator) Calculate(o *order.Order) (Progress, error) {
	if err := o.Validate(); err != nil {
		return Progress{}, err
	}

	status := o.Status()
	if err := status.Validate(); err != nil {
		return Progress{}, err
	}

	stages := order.CanonicalStatuses()
	reached, err := p.reachedOrdinal(o, stages)
	if err != nil {
		return Progress{}, err
	}

	// Timestamps must form an unbroken, non-decreasing prefix of the
	// canonical sequence. A gap truncates the completed range.
	consistent := consistentPrefix(o, stages)
	completedUpTo := min(reached, consistent)

	steps := make([]TrackingStep, 0, len(stages))
	for i, stage := range stages {
		step := TrackingStep{
			Status:    stage,
			Label:     stage.Label(),
			Completed: i <= completedUpTo,
			Current:   status == stage,
		}
		if ts, ok := o.StageTimestamp(stage); ok {
			step.Timestamp = &ts
		}
		steps = append(steps, step)
	}

	return Progress{
		Percentage: percentage(reached, len(stages)),
		Steps:      steps,
	}, nil
}

// reachedOrdinal determines how far along the canonical sequence the order
// has progressed. For cancelled orders this is the last stage with a
// recorded timestamp; otherwise it is the status ordinal.
func (p ProgressCalculator) reachedOrdinal(o *order.Order, stages []order.Status) (int, error) {
	if o.Status() == order.Cancelled {
		last := 0
		for i, stage := range stages {
			if _, ok := o.StageTimestamp(stage); ok {
				last = i
			}
		}
		return last, nil
	}

	return o.Status().Ordinal()
}

// consistentPrefix returns the index of the last stage in the longest
// unbroken prefix of stages whose timestamps are present and non-decreasing.
func consistentPrefix(o *order.Order, stages []order.Status) int {
	last := 0
	prev := o.CreatedAt()
	for i, stage := range stages {
		ts, ok := o.StageTimestamp(stage)
		if !ok || ts.Before(prev) {
			break
		}
		last = i
		prev = ts
	}
	return last
}

// percentage maps an ordinal to a completion percentage over n stages.
// A degenerate single-stage sequence is defined as 100 to avoid division
// by zero.
func percentage(ordinal, n int) int {
	if n <= 1 {
		return 100
	}
	return int(math.Round(float64(ordinal) / float64(n-1) * 100))
}
