package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func invoke(t *testing.T, h func(echo.Context) error, target string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestPaymentHandler_PaymentSuccess_MatchesOrder(t *testing.T) {
	mockOrders := mockUC.NewMockOrderUsecase(t)
	h := NewPaymentHandler(mockOrders, testLogger())

	mockOrders.EXPECT().FindByOrderNum(mock.Anything, "ORD-123").
		Return(&entity.Order{OrderNum: "ORD-123", Status: entity.OrderPaid, Total: 34440}, nil)

	rec, body := invoke(t, h.PaymentSuccess, "/payment/success?external_id=ORD-123")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)

	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ORD-123", data["orderNum"])
	assert.Equal(t, string(entity.OrderPaid), data["status"])
}

func TestPaymentHandler_PaymentSuccess_UnknownOrder(t *testing.T) {
	mockOrders := mockUC.NewMockOrderUsecase(t)
	h := NewPaymentHandler(mockOrders, testLogger())

	mockOrders.EXPECT().FindByOrderNum(mock.Anything, "ORD-404").
		Return(nil, domainerrors.ErrOrderNotFound)

	rec, body := invoke(t, h.PaymentSuccess, "/payment/success?external_id=ORD-404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "ORDER_NOT_FOUND", body.Error.Code)
}

func TestPaymentHandler_PaymentSuccess_MissingExternalID(t *testing.T) {
	mockOrders := mockUC.NewMockOrderUsecase(t)
	h := NewPaymentHandler(mockOrders, testLogger())

	rec, body := invoke(t, h.PaymentSuccess, "/payment/success")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
	mockOrders.AssertNotCalled(t, "FindByOrderNum")
}

func TestPaymentHandler_PaymentFailed(t *testing.T) {
	mockOrders := mockUC.NewMockOrderUsecase(t)
	h := NewPaymentHandler(mockOrders, testLogger())

	rec, body := invoke(t, h.PaymentFailed, "/payment/failed?external_id=ORD-123")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	mockOrders.AssertNotCalled(t, "FindByOrderNum")
}
