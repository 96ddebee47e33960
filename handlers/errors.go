// File: handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bookingRepo "homeserve/database/repository/booking"
	offeringRepo "homeserve/database/repository/offering"
	userRepo "homeserve/database/repository/user"
	"homeserve/services/booking"
	"homeserve/services/payment"
	"homeserve/utils"
)

// respondError maps service failures onto the HTTP surface. The client can
// tell "slot taken" (409), "payment failed" (402) and "system error" (500)
// apart, and retries accordingly.
func respondError(c *gin.Context, err error) {
	var gwErr *payment.GatewayError
	var valErr *booking.ValidationError

	switch {
	case errors.Is(err, offeringRepo.ErrNotFound),
		errors.Is(err, bookingRepo.ErrNotFound),
		errors.Is(err, userRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, offeringRepo.ErrSlotNotAvailable):
		utils.JSONError(c, http.StatusConflict, "slot not available", "The selected time is no longer open. Please pick another slot.")
	case errors.Is(err, bookingRepo.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "invalid booking state", err.Error())
	case errors.As(err, &gwErr):
		utils.JSONError(c, http.StatusPaymentRequired, "payment failed", gwErr.Reason)
	case errors.As(err, &valErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid request", valErr.Message)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "system error", "Something went wrong. Please try again later.")
	}
}
