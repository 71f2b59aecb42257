// Package router contains routing and server setup for the payment-return
// listener.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PaymentHandler *handler.PaymentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	paymentHandler *handler.PaymentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		paymentHandler: params.PaymentHandler,
	}
}

// RegisterRoutes sets up the routes the payment gateway redirects back to.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	paymentGroup := e.Group("/payment")
	{
		paymentGroup.GET("/success", r.paymentHandler.PaymentSuccess)
		paymentGroup.GET("/failed", r.paymentHandler.PaymentFailed)
	}
}
