package http

import (
	"context"
	"net/http"

	"artisan/internal/core/application/usecases/commands"
	"artisan/internal/core/application/usecases/queries"
	"artisan/internal/core/domain/model/kernel"
	"artisan/internal/core/domain/model/order"
	"artisan/internal/metrics"
	"artisan/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RootMessage identifies the service on GET /.
const RootMessage = "Artisan Orders API"

type (
	LoginHandler interface {
		Handle(ctx context.Context, cmd commands.LoginCommand) (commands.LoginResult, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]*order.Order, error)
	}
	SearchOrdersHandler interface {
		Handle(ctx context.Context, query queries.SearchOrdersQuery) ([]*order.Order, error)
	}
	GetOrderStatsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.OrderStats, error)
	}
)

// UseCases groups everything the Server delegates to.
type UseCases struct {
	// Command handlers
	Login             LoginHandler
	CreateOrder       CreateOrderHandler
	ChangeOrderStatus ChangeOrderStatusHandler
	DeleteOrder       DeleteOrderHandler

	// Query handlers
	GetOrder      GetOrderHandler
	GetAllOrders  GetAllOrdersHandler
	SearchOrders  SearchOrdersHandler
	GetOrderStats GetOrderStatsHandler
}

// Server implements ServerInterface. It only translates between HTTP and the
// use cases; errors are returned as-is and turned into responses by
// NewErrorHandler.
type Server struct {
	useCases UseCases
}

func NewServer(useCases UseCases) *Server {
	return &Server{useCases: useCases}
}

// GetRoot handles GET /.
func (s *Server) GetRoot(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Message{Message: RootMessage})
}

// Login handles POST /auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body LoginRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	if body.Password == nil {
		return errs.NewValueIsRequiredError("password")
	}

	cmd, err := commands.NewLoginCommand(*body.Password)
	if err != nil {
		return err
	}

	result, err := s.useCases.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:   result.Token,
		Message: result.Message,
	})
}

// VerifyToken handles GET /auth/verify. Reaching it means BearerAuth accepted
// the token.
func (s *Server) VerifyToken(ctx echo.Context) error {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return ErrMissingToken
	}

	return ctx.JSON(http.StatusOK, VerifyResponse{Valid: true, User: claims.Subject})
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	switch {
	case body.ClientName == nil:
		return errs.NewValueIsRequiredError("client_name")
	case body.Phone == nil:
		return errs.NewValueIsRequiredError("phone")
	case body.Details == nil:
		return errs.NewValueIsRequiredError("details")
	case body.Price == nil:
		return errs.NewValueIsRequiredError("price")
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		*body.ClientName,
		*body.Phone,
		*body.Details,
		*body.Price,
	)
	if err != nil {
		return err
	}

	created, err := s.useCases.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return operationFailed("create_order", err)
	}
	metrics.OrdersCreatedTotal.Inc()

	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// GetOrders handles GET /orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.useCases.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return operationFailed("get_orders", err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// SearchOrders handles GET /orders/search.
func (s *Server) SearchOrders(ctx echo.Context, params SearchOrdersParams) error {
	var text string
	if params.Q != nil {
		text = *params.Q
	}

	orders, err := s.useCases.SearchOrders.Handle(ctx.Request().Context(), queries.NewSearchOrdersQuery(text))
	if err != nil {
		return operationFailed("search_orders", err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrderStats handles GET /orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	stats, err := s.useCases.GetOrderStats.Handle(ctx.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return operationFailed("get_order_stats", err)
	}

	return ctx.JSON(http.StatusOK, toOrderStats(stats))
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	orderID, err := parseOrderID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	found, err := s.useCases.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return operationFailed("get_order", err)
	}

	return ctx.JSON(http.StatusOK, toOrder(found))
}

// UpdateOrderStatus handles PUT /orders/{id}/status. The status is checked
// before the id, so an invalid status is reported even for an unknown order.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id string) error {
	var body StatusUpdate
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	if body.Status == nil {
		return errs.NewValueIsRequiredError("status")
	}
	if _, err := order.ParseStatus(*body.Status); err != nil {
		return err
	}

	orderID, err := parseOrderID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, *body.Status)
	if err != nil {
		return err
	}

	updated, err := s.useCases.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return operationFailed("update_order_status", err)
	}

	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// DeleteOrder handles DELETE /orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id string) error {
	orderID, err := parseOrderID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.useCases.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return operationFailed("delete_order", err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: commands.DeleteMessage})
}

// parseOrderID reports a malformed id as not found: no order can have it.
func parseOrderID(id string) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("orderID", id, err)
	}
	return orderID, nil
}

func bindBody(ctx echo.Context, dest any) error {
	return (&echo.DefaultBinder{}).BindBody(ctx, dest)
}

func operationFailed(operation string, err error) error {
	metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
	return err
}
