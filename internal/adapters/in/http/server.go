// Package http exposes the order lifecycle over REST and streams broadcast
// events to office dashboards over WebSocket. Handlers translate transport
// payloads into commands and queries; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"orderdesk/internal/adapters/out/auth"
	"orderdesk/internal/adapters/out/notify"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response wrapper for every REST endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	submitHandler commands.SubmitOrderCommandHandler
	updateHandler commands.UpdateOrderStatusCommandHandler
	deleteHandler commands.DeleteOrderCommandHandler

	listHandler   queries.ListOrdersQueryHandler
	searchHandler queries.SearchOrdersQueryHandler
	statsHandler  queries.GetOrderStatsQueryHandler

	verifier ports.CredentialVerifier
	tokens   *auth.TokenService
	hub      *notify.Hub
}

// NewServer creates an HTTP server with the required command and query
// handlers plus the auth and broadcast collaborators.
func NewServer(
	submitHandler commands.SubmitOrderCommandHandler,
	updateHandler commands.UpdateOrderStatusCommandHandler,
	deleteHandler commands.DeleteOrderCommandHandler,
	listHandler queries.ListOrdersQueryHandler,
	searchHandler queries.SearchOrdersQueryHandler,
	statsHandler queries.GetOrderStatsQueryHandler,
	verifier ports.CredentialVerifier,
	tokens *auth.TokenService,
	hub *notify.Hub,
) *Server {
	return &Server{
		submitHandler: submitHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
		searchHandler: searchHandler,
		statsHandler:  statsHandler,
		verifier:      verifier,
		tokens:        tokens,
		hub:           hub,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Admin routes
// sit behind the JWT middleware; submission and login are public.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/orders", s.SubmitOrder)
	e.POST("/api/auth/login", s.Login)

	admin := e.Group("/api/admin", s.requireToken)
	admin.GET("/orders", s.ListOrders)
	admin.GET("/orders/search", s.SearchOrders)
	admin.GET("/orders/stats", s.GetOrderStats)
	admin.PUT("/orders/:id/status", s.UpdateOrderStatus)
	admin.DELETE("/orders/:id", s.DeleteOrder)
	admin.GET("/ws", s.Dashboard)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SubmitOrder handles POST /api/orders - accepts a customer submission in
// any of the tolerated payload shapes and returns the minimal summary.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var submission order.Submission
	if err := ctx.Bind(&submission); err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid request body",
		})
	}

	cmd := commands.NewSubmitOrderCommand(submission)
	result, err := s.submitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		var validationErr *order.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.JSON(http.StatusBadRequest, envelope{
				Success: false,
				Message: validationErr.Error(),
			})
		}
		return ctx.JSON(http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: "Order placed successfully",
		Data: map[string]any{
			"orderNumber":       result.OrderNumber,
			"totalAmount":       result.TotalAmount,
			"estimatedDelivery": result.EstimatedDelivery,
			"contactInfo":       result.ContactInfo,
		},
	})
}

// loginRequest is the POST /api/auth/login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login - verifies office credentials and
// issues a session token.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid request body",
		})
	}

	if !s.verifier.Verify(req.Username, req.Password) {
		return ctx.JSON(http.StatusUnauthorized, envelope{
			Success: false,
			Message: "Invalid credentials",
		})
	}

	token, err := s.tokens.Issue(req.Username)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Failed to issue token",
		})
	}

	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Logged in",
		Data:    map[string]string{"token": token, "username": req.Username},
	})
}

// ListOrders handles GET /api/admin/orders with optional status, page and
// pageSize query parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("status"), page, pageSize)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid status filter",
		})
	}

	response, err := s.listHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: response})
}

// SearchOrders handles GET /api/admin/orders/search with q and phone
// query parameters.
func (s *Server) SearchOrders(ctx echo.Context) error {
	query, err := queries.NewSearchOrdersQuery(ctx.QueryParam("q"), ctx.QueryParam("phone"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: "Search query is required",
		})
	}

	results, err := s.searchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Failed to search orders",
		})
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: results})
}

// GetOrderStats handles GET /api/admin/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.statsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Failed to compute stats",
		})
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: stats})
}

// updateStatusRequest is the PUT /api/admin/orders/:id/status body.
// Administrative fields are merged only when present.
type updateStatusRequest struct {
	Status            string     `json:"status"`
	AssignedDriver    *string    `json:"assignedDriver,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
}

// UpdateOrderStatus handles PUT /api/admin/orders/:id/status - moves the
// order to the requested status, merges admin fields, and returns the full
// updated order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid order id",
		})
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, req.Status, order.AdminUpdate{
		AssignedDriver:    req.AssignedDriver,
		Notes:             req.Notes,
		EstimatedDelivery: req.EstimatedDelivery,
	})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid status: " + req.Status,
		})
	}

	updated, err := s.updateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, envelope{
				Success: false,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Failed to update order",
		})
	}

	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Order updated",
		Data:    notify.NewOrderPayload(updated),
	})
}

// DeleteOrder handles DELETE /api/admin/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid order id",
		})
	}

	if err = s.deleteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, envelope{
				Success: false,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, envelope{
			Success: false,
			Message: "Failed to delete order",
		})
	}

	return ctx.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Order deleted",
	})
}
