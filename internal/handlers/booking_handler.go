package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/httperr"
	"github.com/CampusPayServices/fee-slot-booking/internal/httpresp"
	"github.com/CampusPayServices/fee-slot-booking/internal/middleware"
	ucbooking "github.com/CampusPayServices/fee-slot-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	selectFeeUC  *ucbooking.SelectFee
	changeDateUC *ucbooking.ChangeDate
	listSlotsUC  *ucbooking.ListSlots
	selectSlotUC *ucbooking.SelectSlot
	confirmUC    *ucbooking.ConfirmBooking
	resetUC      *ucbooking.Reset
}

func NewBookingHandler(
	selectFeeUC *ucbooking.SelectFee,
	changeDateUC *ucbooking.ChangeDate,
	listSlotsUC *ucbooking.ListSlots,
	selectSlotUC *ucbooking.SelectSlot,
	confirmUC *ucbooking.ConfirmBooking,
	resetUC *ucbooking.Reset,
) *BookingHandler {
	return &BookingHandler{
		selectFeeUC:  selectFeeUC,
		changeDateUC: changeDateUC,
		listSlotsUC:  listSlotsUC,
		selectSlotUC: selectSlotUC,
		confirmUC:    confirmUC,
		resetUC:      resetUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SelectFeeRequest struct {
	FeeType string `json:"fee_type"`
}

type ChangeDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

type SelectSlotRequest struct {
	SlotID int `json:"slot_id" binding:"required"`
}

// ======================================================
// FEES
// ======================================================

func (h *BookingHandler) ListFees(c *gin.Context) {
	httpresp.List(c, domain.Fees())
}

func (h *BookingHandler) SelectFee(c *gin.Context) {
	sessionID := c.MustGet(middleware.ContextSessionID).(string)

	var req SelectFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	sess, err := h.selectFeeUC.Execute(c.Request.Context(), sessionID, req.FeeType)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sessionView(sess)})
}

// ======================================================
// DATE / SLOTS
// ======================================================

func (h *BookingHandler) ChangeDate(c *gin.Context) {
	sessionID := c.MustGet(middleware.ContextSessionID).(string)

	var req ChangeDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	sess, err := h.changeDateUC.Execute(c.Request.Context(), sessionID, req.Date)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sessionView(sess)})
}

func (h *BookingHandler) ListSlots(c *gin.Context) {
	sessionID := c.MustGet(middleware.ContextSessionID).(string)

	list, err := h.listSlotsUC.Execute(c.Request.Context(), sessionID, c.Query("date"))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, list)
}

func (h *BookingHandler) SelectSlot(c *gin.Context) {
	sessionID := c.MustGet(middleware.ContextSessionID).(string)

	var req SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	sess, err := h.selectSlotUC.Execute(c.Request.Context(), sessionID, req.SlotID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sessionView(sess)})
}

// ======================================================
// BOOKING
// ======================================================

func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.MustGet(middleware.ContextSessionID).(string)

	ticket, err := h.confirmUC.Execute(c.Request.Context(), sessionID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, gin.H{"ticket": ticket})
}

func (h *BookingHandler) Reset(c *gin.Context) {
	sessionID := c.MustGet(middleware.ContextSessionID).(string)

	sess, err := h.resetUC.Execute(c.Request.Context(), sessionID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": sessionView(sess)})
}
