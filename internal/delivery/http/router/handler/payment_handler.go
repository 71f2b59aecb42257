package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PaymentHandler resolves the payment gateway's return redirects. The
// gateway echoes the order number back as the external_id query
// parameter; matching it against the shopper's own orders is the only
// correlation the client ever does.
type PaymentHandler struct {
	orderUsecase usecase.OrderUsecase
	logger       *slog.Logger
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(orderUsecase usecase.OrderUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		orderUsecase: orderUsecase,
		logger:       logger,
	}
}

// PaymentSuccess handles the gateway's success redirect.
func (h *PaymentHandler) PaymentSuccess(c echo.Context) error {
	externalID := c.QueryParam("external_id")
	if externalID == "" {
		return response.BadRequest(c, "MISSING_EXTERNAL_ID", "external_id query parameter is required")
	}

	order, err := h.orderUsecase.FindByOrderNum(c.Request().Context(), externalID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrOrderNotFound) {
			h.logger.Warn("payment return does not match any order",
				slog.String("externalId", externalID))

			return response.NotFound(c, "ORDER_NOT_FOUND",
				"no order matches the returned external_id")
		}

		return err
	}

	h.logger.Info("payment confirmed",
		slog.String("orderNum", order.OrderNum),
		slog.String("status", string(order.Status)))

	return response.Success(c, http.StatusOK, map[string]any{
		"orderNum": order.OrderNum,
		"status":   order.Status,
		"total":    order.Total,
	}, "Payment received, thank you for your purchase")
}

// PaymentFailed handles the gateway's failure redirect. Nothing to
// reconcile: the order stays pending on the server side.
func (h *PaymentHandler) PaymentFailed(c echo.Context) error {
	externalID := c.QueryParam("external_id")
	h.logger.Warn("payment failed or canceled", slog.String("externalId", externalID))

	return response.Success(c, http.StatusOK, map[string]any{
		"externalId": externalID,
	}, "Payment was not completed, your order is still awaiting payment")
}
