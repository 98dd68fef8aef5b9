// Package http exposes the order ledger over HTTP. Handlers implement the
// generated servers.ServerInterface; the caller's account and the attached
// deposit arrive as X-Account-Id and X-Attached-Deposit headers.
package http

import (
	"fmt"
	"net/http"
	"strings"

	"orderledger/internal/core/application/usecases/commands"
	"orderledger/internal/core/application/usecases/queries"
	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/order"
	"orderledger/internal/core/domain/services"
	"orderledger/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler

	// Query handlers
	getUserOrdersHandler queries.GetUserOrdersQueryHandler
	getPayoutsHandler    queries.GetPayoutsQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getPayoutsHandler queries.GetPayoutsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		confirmOrderHandler:  confirmOrderHandler,
		getUserOrdersHandler: getUserOrdersHandler,
		getPayoutsHandler:    getPayoutsHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - records an order paid with the attached deposit.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var body servers.OrderPayload
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	caller, err := kernel.NewAccountID(params.XAccountId)
	if err != nil {
		return badRequest(ctx, "Invalid caller: "+err.Error())
	}

	attached, err := kernel.ParseAmount(params.XAttachedDeposit)
	if err != nil {
		return badRequest(ctx, fmt.Sprintf("%s: %v", services.ErrInvalidAmount, err))
	}

	payload := order.Payload{
		ID:          deref(body.Id),
		Flavor:      body.Flavor,
		Size:        body.Size,
		Crust:       deref(body.Crust),
		Toppings:    deref(body.Toppings),
		Name:        body.Name,
		Location:    body.Location,
		PhoneNumber: deref(body.PhoneNumber),
		Total:       body.Total,
	}
	if payload.ID == "" {
		payload.ID = kernel.NewUUID().String()
	}

	cmd, err := commands.NewCreateOrderCommand(payload, attached, caller)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, servers.Order{
		Id:          payload.ID,
		Flavor:      payload.Flavor,
		Size:        payload.Size,
		Crust:       body.Crust,
		Toppings:    body.Toppings,
		Name:        payload.Name,
		Location:    payload.Location,
		PhoneNumber: body.PhoneNumber,
		Total:       payload.Total,
		Status:      false,
	})
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm - confirms one of the caller's orders.
func (s *Server) ConfirmOrder(ctx echo.Context, orderID string, params servers.ConfirmOrderParams) error {
	caller, err := kernel.NewAccountID(params.XAccountId)
	if err != nil {
		return badRequest(ctx, "Invalid caller: "+err.Error())
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, caller)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, "Failed to confirm order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAccountOrders handles GET /api/v1/accounts/{accountId}/orders - lists an account's orders.
func (s *Server) GetAccountOrders(ctx echo.Context, accountID servers.AccountIdPath) error {
	account, err := kernel.NewAccountID(accountID)
	if err != nil {
		return badRequest(ctx, "Invalid account: "+err.Error())
	}

	query, err := queries.NewGetUserOrdersQuery(account)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:          o.ID,
			Flavor:      o.Flavor,
			Size:        o.Size,
			Crust:       optional(o.Crust),
			Toppings:    optional(o.Toppings),
			Name:        o.Name,
			Location:    o.Location,
			PhoneNumber: optional(o.PhoneNumber),
			Total:       o.Total,
			Status:      o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAccountPayouts handles GET /api/v1/accounts/{accountId}/payouts - lists payouts paid by an account.
func (s *Server) GetAccountPayouts(ctx echo.Context, accountID servers.AccountIdPath) error {
	account, err := kernel.NewAccountID(accountID)
	if err != nil {
		return badRequest(ctx, "Invalid account: "+err.Error())
	}

	query, err := queries.NewGetPayoutsQuery(account)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	payouts, err := s.getPayoutsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, "Failed to retrieve payouts")
	}

	response := make([]servers.Payout, len(payouts))
	for i, p := range payouts {
		response[i] = servers.Payout{
			Id:            p.ID.Bytes(),
			OrderId:       p.OrderID,
			Payer:         p.Payer.String(),
			Recipient:     p.Recipient.String(),
			Amount:        p.Amount.String(),
			Status:        servers.PayoutStatus(strings.ToLower(p.Status.String())),
			FailureReason: optional(p.FailureReason),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
