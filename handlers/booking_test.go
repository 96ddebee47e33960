package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingRepo "homeserve/database/repository/booking"
	offeringRepo "homeserve/database/repository/offering"
	"homeserve/middleware"
	"homeserve/models"
	"homeserve/services/payment"
)

// stubWorkflow returns canned results so the handler's status mapping can be
// exercised without storage or a gateway.
type stubWorkflow struct {
	receipt    *models.BookingReceipt
	booking    *models.Booking
	view       *models.BookingView
	views      []models.BookingView
	createErr  error
	confirmErr error
	cancelErr  error
}

func (s *stubWorkflow) CreateBooking(context.Context, string, models.BookingRequest) (*models.BookingReceipt, error) {
	return s.receipt, s.createErr
}

func (s *stubWorkflow) ConfirmPayment(context.Context, string, string, string) (*models.Booking, error) {
	return s.booking, s.confirmErr
}

func (s *stubWorkflow) CancelBooking(context.Context, string, string) (*models.Booking, error) {
	return s.booking, s.cancelErr
}

func (s *stubWorkflow) CompleteBooking(context.Context, string, string) (*models.Booking, error) {
	return s.booking, nil
}

func (s *stubWorkflow) GetBooking(context.Context, string, string) (*models.BookingView, error) {
	if s.view == nil {
		return nil, bookingRepo.ErrNotFound
	}
	return s.view, nil
}

func (s *stubWorkflow) ListUserBookings(context.Context, string) ([]models.BookingView, error) {
	return s.views, nil
}

func (s *stubWorkflow) ReleaseStalePending(context.Context) (int, error) { return 0, nil }

func newBookingRouter(wf *stubWorkflow) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewBookingHandler(wf, zap.NewNop())
	group := router.Group("/api/bookings")
	group.Use(func(c *gin.Context) { c.Set(middleware.ContextUserIDKey, "user-1") })
	group.POST("", handler.CreateBooking)
	group.GET("", handler.ListBookings)
	group.GET("/:id", handler.GetBooking)
	group.POST("/:id/confirm", handler.ConfirmPayment)
	group.POST("/:id/cancel", handler.CancelBooking)
	return router
}

func bookingRequestBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(models.BookingRequest{
		Offering: models.OfferingRef{Kind: models.OfferingService, ID: "svc-clean"},
		Slot:     time.Now().Add(48 * time.Hour).UTC(),
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCreateBookingReturnsReceipt(t *testing.T) {
	wf := &stubWorkflow{receipt: &models.BookingReceipt{
		Booking:      models.Booking{ID: "bk-1", Status: models.BookingPending},
		IntentID:     "pi_123",
		ClientSecret: "secret_123",
	}}
	router := newBookingRouter(wf)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bookingRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var receipt models.BookingReceipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, "bk-1", receipt.Booking.ID)
	assert.Equal(t, "secret_123", receipt.ClientSecret)
}

func TestCreateBookingSlotConflict(t *testing.T) {
	wf := &stubWorkflow{createErr: offeringRepo.ErrSlotNotAvailable}
	router := newBookingRouter(wf)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bookingRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "slot not available")
}

func TestCreateBookingRejectsMalformedBody(t *testing.T) {
	router := newBookingRouter(&stubWorkflow{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{"offering":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmPaymentGatewayFailure(t *testing.T) {
	wf := &stubWorkflow{confirmErr: &payment.GatewayError{Reason: "card declined"}}
	router := newBookingRouter(wf)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/bk-1/confirm",
		bytes.NewBufferString(`{"paymentMethodId":"pm_card"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "card declined")
}

func TestCancelBookingInvalidState(t *testing.T) {
	wf := &stubWorkflow{cancelErr: bookingRepo.ErrInvalidTransition}
	router := newBookingRouter(wf)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/bk-1/cancel", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetBookingNotFound(t *testing.T) {
	router := newBookingRouter(&stubWorkflow{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
