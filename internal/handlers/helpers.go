package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/httperr"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

// sessionView is everything a presentation layer needs to render the
// current screen without reaching into internals.
func sessionView(sess *models.Session) gin.H {
	var feeAmount int64
	if sess.SelectedFee != "" {
		feeAmount, _ = domain.FeeAmount(sess.SelectedFee)
	}

	return gin.H{
		"id":               sess.ID,
		"email":            sess.Email,
		"screen":           sess.Screen,
		"selected_fee":     sess.SelectedFee,
		"fee_amount":       feeAmount,
		"selected_date":    sess.SelectedDate,
		"selected_slot_id": sess.SelectedSlotID,
		"ticket":           sess.Ticket,
	}
}

// mapBookingError translates business rejections into HTTP responses. Every
// guard failure is a 4xx; nothing here is fatal or retryable.
func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "session_not_found"):
		httperr.Unauthorized(c, "session_not_found", "Session expired, please log in again.")

	case httperr.IsBusiness(err, "empty_email"):
		httperr.BadRequest(c, "empty_email", "Email is required to log in.")

	case httperr.IsBusiness(err, "unknown_fee_type"):
		httperr.BadRequest(c, "unknown_fee_type", "Unknown fee type.")

	case httperr.IsBusiness(err, "no_fee_selected"):
		httperr.BadRequest(c, "no_fee_selected", "Select a fee type before booking.")

	case httperr.IsBusiness(err, "no_slot_selected"):
		httperr.BadRequest(c, "no_slot_selected", "Select a time slot before booking.")

	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")

	case httperr.IsBusiness(err, "date_out_of_range"):
		httperr.BadRequest(c, "date_out_of_range", "Date is outside the booking window.")

	case httperr.IsBusiness(err, "slot_not_found"):
		httperr.NotFound(c, "slot_not_found", "Slot does not exist.")

	case httperr.IsBusiness(err, "slot_full"):
		httperr.BadRequest(c, "slot_full", "Slot is already full.")

	case httperr.IsBusiness(err, "slot_in_past"):
		httperr.BadRequest(c, "slot_in_past", "Slot has already started.")

	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Action not allowed on this screen.")

	default:
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
