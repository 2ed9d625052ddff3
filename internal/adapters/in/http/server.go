// Package http exposes the delivery API over HTTP using the Echo framework.
// Handlers translate requests into commands and queries and map domain
// errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"delivery/internal/core/application/usecases/commands"
	"delivery/internal/core/application/usecases/queries"
	"delivery/internal/core/domain/model/courier"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/services"
	"delivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	createCourierHandler commands.CreateCourierCommandHandler
	advanceOrderHandler  commands.AdvanceOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler

	// Query handlers
	getOrdersHandler        queries.GetOrdersQueryHandler
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler
	getAllCouriersHandler   queries.GetAllCouriersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderTrackingHandler queries.GetOrderTrackingQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		createCourierHandler:    createCourierHandler,
		advanceOrderHandler:     advanceOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		getOrdersHandler:        getOrdersHandler,
		getOrderTrackingHandler: getOrderTrackingHandler,
		getAllCouriersHandler:   getAllCouriersHandler,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id/tracking", s.GetOrderTracking)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers", s.GetCouriers)
}

// CreateOrder handles POST /api/v1/orders - registers a new delivery order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID: "+request.CustomerID)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		customerID,
		request.PickupAddress,
		request.DeliveryAddress,
		request.DistanceKM,
		request.Price,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by status and sorted. Query parameters: status (a status name, "active"
// or "all"), sort ("date", "distance", "price") and dir ("asc", "desc").
func (s *Server) GetOrders(ctx echo.Context) error {
	filter, err := services.ParseStatusFilter(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+ctx.QueryParam("status"))
	}

	query := queries.NewGetOrdersQuery(
		filter,
		services.ParseSortKey(ctx.QueryParam("sort")),
		services.ParseSortDirection(ctx.QueryParam("dir")),
	)

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, item := range orders {
		var courierID *string
		if item.CourierID != nil {
			id := item.CourierID.String()
			courierID = &id
		}

		response[i] = OrderResponse{
			ID:              item.ID.String(),
			CustomerID:      item.CustomerID.String(),
			CourierID:       courierID,
			PickupAddress:   item.PickupAddress,
			DeliveryAddress: item.DeliveryAddress,
			DistanceKM:      item.DistanceKM,
			Price:           item.Price,
			Status:          item.Status.String(),
			StatusLabel:     item.Status.Label(),
			CreatedAt:       item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderTracking handles GET /api/v1/orders/:id/tracking - returns the
// progress view for one order.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+ctx.Param("id"))
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid tracking query: "+err.Error())
	}

	tracking, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve order tracking")
	}

	return ctx.JSON(http.StatusOK, tracking)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order to
// its next lifecycle stage.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+ctx.Param("id"))
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid advance command: "+err.Error())
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to advance order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order
// that has not been delivered yet.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+ctx.Param("id"))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid cancel command: "+err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var request CreateCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	transport, err := courier.TransportFromString(request.Transport)
	if err != nil {
		return badRequest(ctx, "Invalid transport: "+request.Transport)
	}

	cmd, err := commands.NewCreateCourierCommand(request.Name, transport)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to create courier")
	}

	return ctx.JSON(http.StatusCreated, CreateCourierResponse{ID: cmd.CourierID().String()})
}

// GetCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve couriers")
	}

	response := make([]CourierResponse, len(couriers))
	for i, item := range couriers {
		var currentOrderID *string
		if item.CurrentOrderID != nil {
			id := item.CurrentOrderID.String()
			currentOrderID = &id
		}

		response[i] = CourierResponse{
			ID:             item.ID.String(),
			Name:           item.Name,
			Transport:      item.Transport,
			Status:         item.Status,
			CurrentOrderID: currentOrderID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application errors to HTTP status codes: missing
// aggregates become 404, rejected lifecycle transitions become 409 and
// everything else is a 500 with a generic message.
func domainError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}
