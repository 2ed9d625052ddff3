package order

import (
	"fmt"

	"delivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Assigned ──> PickedUp ──> InTransit ──> Delivered
//	   │            │            │             │
//	   └────────────┴────────────┴─────────────┴──> Cancelled
//
// Created, Assigned, PickedUp, InTransit, and Delivered form the canonical
// sequence. Cancelled is a terminal side branch reachable from any
// non-terminal status and has no position in the canonical sequence.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	// Orders in this status are waiting to be assigned to a courier.
	Created

	// Assigned indicates the order has been assigned to a courier.
	Assigned

	// PickedUp indicates the courier has collected the order at the
	// pickup address.
	PickedUp

	// InTransit indicates the order is on its way to the delivery address.
	InTransit

	// Delivered indicates the order has been successfully delivered.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a terminal state reachable from any non-terminal status.
	Cancelled
)

// canonicalSequence is the total-ordered list of non-cancelled statuses.
// Ordinal positions and progress percentages derive from this slice.
func canonicalSequence() []Status {
	return []Status{Created, Assigned, PickedUp, InTransit, Delivered}
}

// CanonicalStatuses returns the canonical progression sequence
// [Created, Assigned, PickedUp, InTransit, Delivered] in order.
// Cancelled is not part of the sequence.
func CanonicalStatuses() []Status {
	return canonicalSequence()
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses a status from its wire representation
// (e.g. "PICKED_UP"). Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Assigned, PickedUp, InTransit, Delivered,
// Cancelled. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("CREATED", "ASSIGNED", ...).
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Label returns the human-readable display label for the status,
// used by tracking step descriptors.
func (s Status) Label() string {
	switch s {
	case Created:
		return "Order created"
	case Assigned:
		return "Courier assigned"
	case PickedUp:
		return "Picked up"
	case InTransit:
		return "In transit"
	case Delivered:
		return "Delivered"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Ordinal returns the position of the status within the canonical sequence,
// starting at 0 for Created. Cancelled and Unknown have no ordinal and
// produce an error.
func (s Status) Ordinal() (int, error) {
	for i, status := range canonicalSequence() {
		if status == s {
			return i, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s has no position in the canonical sequence", s.String()))
}

// Next returns the immediate successor of the status in the canonical
// sequence. The second return value is false when no successor exists:
// Delivered is final, and Cancelled and Unknown are outside the sequence.
func (s Status) Next() (Status, bool) {
	sequence := canonicalSequence()
	for i, status := range sequence {
		if status == s && i+1 < len(sequence) {
			return sequence[i+1], true
		}
	}
	return Unknown, false
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order is currently in progress with a
// courier, i.e. Assigned, PickedUp, or InTransit.
func (s Status) IsActive() bool {
	return s == Assigned || s == PickedUp || s == InTransit
}

// ValidateAssign checks if the status allows courier assignment without
// performing the transition.
//
// Valid statuses for assignment:
//   - Created (initial assignment)
//   - Assigned (reassignment to a different courier)
func (s Status) ValidateAssign() error {
	if s != Created && s != Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment.
//
// Business Rules:
//   - Created orders must not have a courier assigned
//   - Assigned, PickedUp, InTransit, and Delivered orders must have one
//   - Cancelled orders may or may not have one, depending on how far the
//     order progressed before cancellation
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if s == Cancelled {
		return nil
	}

	if courier && !s.IsActive() && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s.IsActive() || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - Created -> Assigned (initial assignment)
//   - Assigned -> Assigned (reassignment to a different courier)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Assigned, nil
}

// PickUp transitions the status to PickedUp.
// Only valid from Assigned.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}

	return PickedUp, nil
}

// StartTransit transitions the status to InTransit.
// Only valid from PickedUp.
func (s Status) StartTransit() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start transit", s.String()),
		)
	}

	return InTransit, nil
}

// CompleteDelivery transitions the status to Delivered.
// Only valid from InTransit. Delivered is a final state.
func (s Status) CompleteDelivery() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete delivery", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Valid from any non-terminal status; Delivered and Cancelled orders
// cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
