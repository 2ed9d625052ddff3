package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"delivery/internal/core/domain/model/order"
	"delivery/internal/core/domain/services"
	"delivery/internal/core/ports"
	"delivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler builds the tracking view of an order.
// Uses a read-through cache: serving a snapshot that is a few seconds stale
// is acceptable for tracking, so hits skip the database entirely. Cache
// failures degrade to a database read and are logged, never surfaced.
type GetOrderTrackingQueryHandler struct {
	db       *gorm.DB
	cache    ports.TrackingCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection, a tracking cache, and the TTL for
// cached snapshots.
func NewGetOrderTrackingQueryHandler(
	db *gorm.DB,
	cache ports.TrackingCache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{
		db:       db,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With("component", "order_tracking_query"),
	}
}

// Handle executes the tracking query for one order.
// Returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	cacheKey := "tracking:" + query.OrderID().String()

	if h.cache != nil {
		cached, found, err := h.cache.Get(ctx, cacheKey)
		if err != nil {
			h.logger.WarnContext(ctx, "Tracking cache read failed", "error", err)
		} else if found {
			var response GetOrderTrackingQueryResponse
			if err = json.Unmarshal(cached, &response); err == nil {
				return response, nil
			}
			h.logger.WarnContext(ctx, "Discarding corrupt tracking cache entry", "error", err)
		}
	}

	aggregate, err := h.fetchOrder(ctx, query)
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	progress, err := services.NewProgressCalculator().Calculate(aggregate)
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	response := GetOrderTrackingQueryResponse{
		OrderID:     aggregate.ID().String(),
		Status:      aggregate.Status().String(),
		StatusLabel: aggregate.Status().Label(),
		Percentage:  progress.Percentage,
		Steps:       make([]TrackingStepResponse, 0, len(progress.Steps)),
	}
	for _, step := range progress.Steps {
		response.Steps = append(response.Steps, TrackingStepResponse{
			Status:    step.Status.String(),
			Label:     step.Label,
			Completed: step.Completed,
			Current:   step.Current,
			Timestamp: step.Timestamp,
		})
	}

	if h.cache != nil {
		snapshot, marshalErr := json.Marshal(response)
		if marshalErr == nil {
			if cacheErr := h.cache.Set(ctx, cacheKey, snapshot, h.cacheTTL); cacheErr != nil {
				h.logger.WarnContext(ctx, "Tracking cache write failed", "error", cacheErr)
			}
		}
	}

	return response, nil
}

func (h GetOrderTrackingQueryHandler) fetchOrder(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			courier_id,
			pickup_address,
			delivery_address,
			distance_km,
			price,
			status,
			created_at,
			assigned_at,
			picked_up_at,
			in_transit_at,
			delivered_at,
			cancelled_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return scanOrder(rows)
}
