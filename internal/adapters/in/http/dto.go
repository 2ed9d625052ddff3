package http

import "time"

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the JSON body for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID      string  `json:"customerId"`
	PickupAddress   string  `json:"pickupAddress"`
	DeliveryAddress string  `json:"deliveryAddress"`
	DistanceKM      float64 `json:"distanceKm"`
	Price           float64 `json:"price"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// CreateCourierRequest is the JSON body for POST /api/v1/couriers.
type CreateCourierRequest struct {
	Name      string `json:"name"`
	Transport string `json:"transport"`
}

// CreateCourierResponse returns the identifier of the registered courier.
type CreateCourierResponse struct {
	ID string `json:"id"`
}

// OrderResponse is one order in the GET /api/v1/orders listing.
type OrderResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customerId"`
	CourierID       *string   `json:"courierId,omitempty"`
	PickupAddress   string    `json:"pickupAddress"`
	DeliveryAddress string    `json:"deliveryAddress"`
	DistanceKM      float64   `json:"distanceKm"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"statusLabel"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CourierResponse is one courier in the GET /api/v1/couriers listing.
type CourierResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Transport      string  `json:"transport"`
	Status         string  `json:"status"`
	CurrentOrderID *string `json:"currentOrderId,omitempty"`
}
