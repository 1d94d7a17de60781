// Package http exposes the back office operations over an Echo HTTP API.
// Handlers translate requests into commands and queries, and domain errors
// into status codes; no business logic lives here.
package http

import (
	"errors"
	"net/http"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/delivery"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services/history"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP API for the delivery back office.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	importOrdersHandler   commands.ImportOrdersCommandHandler
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	recordApprovalHandler commands.RecordApprovalCommandHandler
	startOrderHandler     commands.StartOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler

	// Query handlers
	getOrderHistoryHandler      queries.GetOrderHistoryQueryHandler
	getPendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	importOrdersHandler commands.ImportOrdersCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	recordApprovalHandler commands.RecordApprovalCommandHandler,
	startOrderHandler commands.StartOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getPendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler,
) *Server {
	return &Server{
		importOrdersHandler:         importOrdersHandler,
		createDeliveryHandler:       createDeliveryHandler,
		recordApprovalHandler:       recordApprovalHandler,
		startOrderHandler:           startOrderHandler,
		completeOrderHandler:        completeOrderHandler,
		getOrderHistoryHandler:      getOrderHistoryHandler,
		getPendingDeliveriesHandler: getPendingDeliveriesHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1/tenants/:tenantId")
	api.POST("/orders/import", s.ImportOrders)
	api.POST("/orders/:orderId/start", s.StartOrder)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.GET("/orders/:orderId/history", s.GetOrderHistory)
	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/pending", s.GetPendingDeliveries)
	api.POST("/deliveries/:deliveryId/approvals", s.RecordApproval)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderLineRequest struct {
	Number     string  `json:"number"`
	Weight     float64 `json:"weight"`
	Value      float64 `json:"value"`
	PostalCode int     `json:"postalCode"`
	SortIndex  int     `json:"sortIndex"`
}

type importOrdersRequest struct {
	Orders []orderLineRequest `json:"orders"`
}

type createDeliveryRequest struct {
	DriverID    string   `json:"driverId"`
	VehicleID   string   `json:"vehicleId"`
	OrderIDs    []string `json:"orderIds"`
	Observation string   `json:"observation"`
}

type recordApprovalRequest struct {
	Action  string `json:"action"`
	Reason  string `json:"reason"`
	ActorID string `json:"actorId"`
}

type startOrderRequest struct {
	DriverID string `json:"driverId"`
}

type completeOrderRequest struct {
	Delivered     bool    `json:"delivered"`
	FailureReason *string `json:"failureReason,omitempty"`
	FailureCode   *string `json:"failureCode,omitempty"`
	ProofURL      *string `json:"proofUrl,omitempty"`
}

type orderResponse struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	Status        string     `json:"status"`
	DeliveryID    *string    `json:"deliveryId,omitempty"`
	DriverID      *string    `json:"driverId,omitempty"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	FailureReason *string    `json:"failureReason,omitempty"`
	FailureCode   *string    `json:"failureCode,omitempty"`
}

type deliveryResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	DriverID    string     `json:"driverId"`
	VehicleID   string     `json:"vehicleId"`
	Freight     float64    `json:"freight"`
	Observation string     `json:"observation"`
	CreatedAt   time.Time  `json:"createdAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	FinishedAt  *time.Time `json:"finishedAt,omitempty"`
}

type pendingDeliveryResponse struct {
	ID          string    `json:"id"`
	DriverID    string    `json:"driverId"`
	VehicleID   string    `json:"vehicleId"`
	Freight     float64   `json:"freight"`
	Observation string    `json:"observation"`
	CreatedAt   time.Time `json:"createdAt"`
}

type eventResponse struct {
	ID          string            `json:"id"`
	Timestamp   time.Time         `json:"timestamp"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Actor       string            `json:"actor,omitempty"`
	Details     map[string]string `json:"details,omitempty"`
}

// ImportOrders handles POST /api/v1/tenants/:tenantId/orders/import.
// Registers a batch of orders in SEM_ROTA status.
func (s *Server) ImportOrders(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantId"))
	if err != nil {
		return badRequest(ctx, "Invalid tenant id")
	}

	var req importOrdersRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(req.Orders))
	for _, l := range req.Orders {
		value, moneyErr := kernel.NewMoney(l.Value)
		if moneyErr != nil {
			return badRequest(ctx, "Invalid order value: "+moneyErr.Error())
		}
		lines = append(lines, commands.OrderLine{
			ID:         kernel.NewUUID(),
			Number:     l.Number,
			Weight:     l.Weight,
			Value:      value,
			PostalCode: l.PostalCode,
			SortIndex:  l.SortIndex,
		})
	}

	cmd, err := commands.NewImportOrdersCommand(tenantID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid import data: "+err.Error())
	}

	orders, err := s.importOrdersHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderToResponse(o))
	}

	return ctx.JSON(http.StatusCreated, response)
}

// CreateDelivery handles POST /api/v1/tenants/:tenantId/deliveries.
// Groups SEM_ROTA orders into a routed delivery; the response status tells
// whether the route started immediately or is held for approval.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantId"))
	if err != nil {
		return badRequest(ctx, "Invalid tenant id")
	}

	var req createDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid order id: "+raw)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), tenantID, driverID, vehicleID, orderIDs, req.Observation,
	)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryToResponse(created))
}

// RecordApproval handles POST /api/v1/tenants/:tenantId/deliveries/:deliveryId/approvals.
// Records a supervisor's decision: APROVADO, REJEITADO or NOVA_LIBERACAO.
func (s *Server) RecordApproval(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantId"))
	if err != nil {
		return badRequest(ctx, "Invalid tenant id")
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	var req recordApprovalRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromString(req.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid actor id")
	}

	cmd, err := commands.NewRecordApprovalCommand(
		deliveryID, tenantID, actionFromString(req.Action), req.Reason, actorID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid approval data: "+err.Error())
	}

	updated, err := s.recordApprovalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryToResponse(updated))
}

// StartOrder handles POST /api/v1/tenants/:tenantId/orders/:orderId/start.
// The driver reports starting work on an order of an active route.
func (s *Server) StartOrder(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantId"))
	if err != nil {
		return badRequest(ctx, "Invalid tenant id")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req startOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewStartOrderCommand(orderID, tenantID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid start data: "+err.Error())
	}

	started, err := s.startOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(started))
}

// CompleteOrder handles POST /api/v1/tenants/:tenantId/orders/:orderId/complete.
// The driver reports the delivery outcome; a failed outcome requires a reason.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantId"))
	if err != nil {
		return badRequest(ctx, "Invalid tenant id")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req completeOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteOrderCommand(
		orderID, tenantID, req.Delivered, req.FailureReason, req.FailureCode, req.ProofURL,
	)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	completed, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(completed))
}

// GetOrderHistory handles GET /api/v1/tenants/:tenantId/orders/:orderId/history.
// Returns the reconstructed audit trail for the order.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantId"))
	if err != nil {
		return badRequest(ctx, "Invalid tenant id")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID, tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid history request: "+err.Error())
	}

	events, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		response = append(response, eventToResponse(ev))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingDeliveries handles GET /api/v1/tenants/:tenantId/deliveries/pending.
// Returns the tenant's approval work queue, oldest first.
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	tenantID, err := kernel.UUIDFromString(ctx.Param("tenantId"))
	if err != nil {
		return badRequest(ctx, "Invalid tenant id")
	}

	query, err := queries.NewGetPendingDeliveriesQuery(tenantID)
	if err != nil {
		return badRequest(ctx, "Invalid queue request: "+err.Error())
	}

	pending, err := s.getPendingDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]pendingDeliveryResponse, 0, len(pending))
	for _, p := range pending {
		response = append(response, pendingDeliveryResponse{
			ID:          p.ID.String(),
			DriverID:    p.DriverID.String(),
			VehicleID:   p.VehicleID.String(),
			Freight:     p.Freight,
			Observation: p.Observation,
			CreatedAt:   p.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderToResponse(o *order.Order) orderResponse {
	resp := orderResponse{
		ID:            o.ID().String(),
		Number:        o.Number(),
		Status:        o.Status().String(),
		StartedAt:     o.StartedAt(),
		CompletedAt:   o.CompletedAt(),
		FailureReason: o.FailureReason(),
		FailureCode:   o.FailureCode(),
	}

	if id := o.DeliveryID(); id != nil {
		raw := id.String()
		resp.DeliveryID = &raw
	}
	if id := o.DriverID(); id != nil {
		raw := id.String()
		resp.DriverID = &raw
	}

	return resp
}

func deliveryToResponse(d *delivery.Delivery) deliveryResponse {
	return deliveryResponse{
		ID:          d.ID().String(),
		Status:      d.Status().String(),
		DriverID:    d.DriverID().String(),
		VehicleID:   d.VehicleID().String(),
		Freight:     d.Freight().Float64(),
		Observation: d.Observation(),
		CreatedAt:   d.CreatedAt(),
		StartedAt:   d.StartedAt(),
		FinishedAt:  d.FinishedAt(),
	}
}

func eventToResponse(ev history.Event) eventResponse {
	return eventResponse{
		ID:          ev.ID,
		Timestamp:   ev.Timestamp,
		Type:        ev.Type,
		Description: ev.Description,
		Actor:       ev.Actor,
		Details:     ev.Details,
	}
}

// actionFromString maps the wire action name to the domain enum. An unknown
// name maps to ActionUnknown, which the command constructor rejects.
func actionFromString(s string) delivery.ApprovalAction {
	switch s {
	case delivery.ActionApproved.String():
		return delivery.ActionApproved
	case delivery.ActionRejected.String():
		return delivery.ActionRejected
	case delivery.ActionReapprovalNeeded.String():
		return delivery.ActionReapprovalNeeded
	default:
		return delivery.ActionUnknown
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a use case error to its HTTP status: missing objects are
// 404, lost races and illegal transitions are 409, bad input is 400, and
// tenant misconfiguration is 422 because only an admin can fix it.
func domainError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrStateConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrConfigurationMissing),
		errors.Is(err, errs.ErrUnsupportedConfiguration):
		code = http.StatusUnprocessableEntity
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, errorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
