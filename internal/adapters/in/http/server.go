// Package http exposes the order intake API over HTTP.
// It coordinates between echo handlers and application use cases.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"orderagent/internal/core/application/usecases/commands"
	"orderagent/internal/core/application/usecases/queries"
	"orderagent/internal/core/domain/model/kernel"
	"orderagent/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned on every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderAccepted is the JSON body returned when an order operation was accepted.
type OrderAccepted struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// OrderRecord is the full persisted order record as returned by GetOrder.
type OrderRecord struct {
	OrderID    string          `json:"order_id"`
	Customer   json.RawMessage `json:"customer"`
	Items      json.RawMessage `json:"items"`
	Status     string          `json:"status"`
	TrackingID *string         `json:"tracking_id,omitempty"`
	Error      *string         `json:"error,omitempty"`
}

// Server handles the HTTP surface of the order agent.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	resendOrderHandler commands.ResendOrderCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	resendOrderHandler commands.ResendOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		resendOrderHandler: resendOrderHandler,
		getOrderHandler:    getOrderHandler,
	}
}

// RegisterRoutes attaches the order endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/order", s.CreateOrder)
	e.GET("/order/:order_id", s.GetOrder)
	e.POST("/resend/:order_id", s.ResendOrder)
}

// newOrderRequest carries the intake payload. Customer and items are opaque
// to the API and stored verbatim.
type newOrderRequest struct {
	Customer json.RawMessage `json:"customer"`
	Items    json.RawMessage `json:"items"`
}

// CreateOrder handles POST /order - accepts a new order and schedules its dispatch.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request newOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(request.Customer, request.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusOK, OrderAccepted{
		Message: "Order received",
		OrderID: orderID.String(),
	})
}

// GetOrder handles GET /order/:order_id - returns the full persisted record.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return orderNotFound(ctx)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return orderNotFound(ctx)
	}

	record, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return orderNotFound(ctx)
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, OrderRecord{
		OrderID:    record.ID.String(),
		Customer:   record.Customer,
		Items:      record.Items,
		Status:     record.Status.String(),
		TrackingID: record.TrackingID,
		Error:      record.LastError,
	})
}

// ResendOrder handles POST /resend/:order_id - schedules another
// dispatch attempt for an existing order.
func (s *Server) ResendOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return orderNotFound(ctx)
	}

	cmd, err := commands.NewResendOrderCommand(orderID)
	if err != nil {
		return orderNotFound(ctx)
	}

	resentID, err := s.resendOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return orderNotFound(ctx)
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to resend order",
		})
	}

	return ctx.JSON(http.StatusOK, OrderAccepted{
		Message: "Resend scheduled",
		OrderID: resentID.String(),
	})
}

func orderNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: "Order not found",
	})
}
