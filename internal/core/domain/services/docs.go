// Package services provides domain services that implement business logic
// spanning multiple domain entities in the delivery platform.
//
// The package includes:
//   - OrderDispatcher: finds and assigns the optimal courier for an order
//   - ProgressCalculator: derives a tracking progress view (percentage and
//     step descriptors) from an order's status and stage timestamps
//   - Order view helpers: status filtering and stable sorting of order
//     collections without mutating the input
//
// All services are pure and stateless; they coordinate aggregates following
// Domain-Driven Design principles.
package services
