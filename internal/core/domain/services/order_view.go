package services

import (
	"sort"

	"delivery/internal/core/domain/model/order"
)

// StatusFilter selects which orders appear in a filtered view.
// Use StatusFilterAll, StatusFilterActive, or StatusFilterFor to construct
// one; the zero value behaves like StatusFilterAll.
type StatusFilter struct {
	active bool
	status order.Status
	exact  bool
}

// StatusFilterAll matches every order.
func StatusFilterAll() StatusFilter {
	return StatusFilter{}
}

// StatusFilterActive matches orders currently in progress with a courier:
// Assigned, PickedUp, or InTransit.
func StatusFilterActive() StatusFilter {
	return StatusFilter{active: true}
}

// StatusFilterFor matches orders with exactly the given status.
func StatusFilterFor(status order.Status) StatusFilter {
	return StatusFilter{status: status, exact: true}
}

// ParseStatusFilter parses a filter from its wire form: "all", "active",
// or a specific status name such as "PICKED_UP". An empty string means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch s {
	case "", "all":
		return StatusFilterAll(), nil
	case "active":
		return StatusFilterActive(), nil
	default:
		status, err := order.StatusFromString(s)
		if err != nil {
			return StatusFilter{}, err
		}
		return StatusFilterFor(status), nil
	}
}

// Matches reports whether the order's status passes the filter.
func (f StatusFilter) Matches(status order.Status) bool {
	switch {
	case f.exact:
		return status == f.status
	case f.active:
		return status.IsActive()
	default:
		return true
	}
}

// SortKey identifies the order attribute a view is sorted by.
type SortKey int

const (
	// SortKeyNone leaves the view unsorted.
	SortKeyNone SortKey = iota

	// SortKeyDate sorts by creation time.
	SortKeyDate

	// SortKeyDistance sorts by delivery distance.
	SortKeyDistance

	// SortKeyPrice sorts by price.
	SortKeyPrice
)

// ParseSortKey parses a sort key from its wire form ("date", "distance",
// "price"). Unrecognized values map to SortKeyNone: an unknown sort key is
// a view convenience no-op, not an error.
func ParseSortKey(s string) SortKey {
	switch s {
	case "date":
		return SortKeyDate
	case "distance":
		return SortKeyDistance
	case "price":
		return SortKeyPrice
	default:
		return SortKeyNone
	}
}

// SortDirection is the ordering direction of a sorted view.
type SortDirection int

const (
	// SortAscending orders smallest first.
	SortAscending SortDirection = iota

	// SortDescending orders largest first.
	SortDescending
)

// ParseSortDirection parses a direction from its wire form; anything other
// than "desc" is ascending.
func ParseSortDirection(s string) SortDirection {
	if s == "desc" {
		return SortDescending
	}
	return SortAscending
}

// Toggle flips the direction. Repeated selection of the same sort key in a
// client toggles between ascending and descending.
func (d SortDirection) Toggle() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// FilterOrders returns a new slice containing the orders whose status passes
// the filter, preserving their relative order. The input is not modified.
func FilterOrders(orders []*order.Order, filter StatusFilter) []*order.Order {
	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if filter.Matches(o.Status()) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// SortOrders returns a new slice with the orders sorted by the given key and
// direction. The sort is stable: orders with equal keys keep their original
// relative order. The input slice is never modified, and SortKeyNone (or any
// unrecognized key) returns an unsorted copy.
func SortOrders(orders []*order.Order, key SortKey, direction SortDirection) []*order.Order {
	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)

	var less func(a, b *order.Order) bool
	switch key {
	case SortKeyDate:
		less = func(a, b *order.Order) bool { return a.CreatedAt().Before(b.CreatedAt()) }
	case SortKeyDistance:
		less = func(a, b *order.Order) bool { return a.DistanceKM() < b.DistanceKM() }
	case SortKeyPrice:
		less = func(a, b *order.Order) bool { return a.Price() < b.Price() }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == SortDescending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}
