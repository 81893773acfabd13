package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface mirrors the operations of api/openapi.yaml.
type ServerInterface interface {
	// Service identity
	// (GET /)
	GetRoot(ctx echo.Context) error
	// Exchange the admin password for a token
	// (POST /auth/login)
	Login(ctx echo.Context) error
	// Check the presented token
	// (GET /auth/verify)
	VerifyToken(ctx echo.Context) error
	// List orders, newest first
	// (GET /orders)
	GetOrders(ctx echo.Context) error
	// Create an order in pending status
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Case-insensitive substring search on client name
	// (GET /orders/search)
	SearchOrders(ctx echo.Context, params SearchOrdersParams) error
	// Order counts per status
	// (GET /orders/stats)
	GetOrderStats(ctx echo.Context) error
	// Get one order
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id string) error
	// Delete one order
	// (DELETE /orders/{id})
	DeleteOrder(ctx echo.Context, id string) error
	// Change the status of an order
	// (PUT /orders/{id}/status)
	UpdateOrderStatus(ctx echo.Context, id string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetRoot(ctx echo.Context) error {
	return w.Handler.GetRoot(ctx)
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) VerifyToken(ctx echo.Context) error {
	return w.Handler.VerifyToken(ctx)
}

func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) SearchOrders(ctx echo.Context) error {
	var params SearchOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "q", ctx.QueryParams(), &params.Q)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter q: "+err.Error())
	}

	return w.Handler.SearchOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrderStats(ctx echo.Context) error {
	return w.Handler.GetOrderStats(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

func bindOrderID(ctx echo.Context) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter id: "+err.Error())
	}
	return id, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RouteMiddlewares are attached per route: Public to every route, Protected
// only to routes that need a bearer token, ahead of Public.
type RouteMiddlewares struct {
	Public    []echo.MiddlewareFunc
	Protected []echo.MiddlewareFunc
}

// RegisterHandlers mounts every operation of si on router under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string, mw RouteMiddlewares) {
	w := &ServerInterfaceWrapper{Handler: si}

	public := mw.Public
	protected := append(append([]echo.MiddlewareFunc{}, mw.Protected...), mw.Public...)

	router.GET(baseURL+"/", w.GetRoot, public...)
	router.POST(baseURL+"/auth/login", w.Login, public...)
	router.GET(baseURL+"/auth/verify", w.VerifyToken, protected...)
	router.GET(baseURL+"/orders", w.GetOrders, protected...)
	router.POST(baseURL+"/orders", w.CreateOrder, protected...)
	router.GET(baseURL+"/orders/search", w.SearchOrders, protected...)
	router.GET(baseURL+"/orders/stats", w.GetOrderStats, protected...)
	router.GET(baseURL+"/orders/:id", w.GetOrder, protected...)
	router.DELETE(baseURL+"/orders/:id", w.DeleteOrder, protected...)
	router.PUT(baseURL+"/orders/:id/status", w.UpdateOrderStatus, protected...)
}
