package booking

import (
	"strings"
	"time"

	"github.com/CampusPayServices/fee-slot-booking/internal/httperr"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// NewSession starts a logged-in session for email. The selected date
// defaults to today.
func NewSession(id, email string, now time.Time, seed int64) (*models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, httperr.ErrBusiness("empty_email")
	}

	return &models.Session{
		ID:           id,
		Email:        email,
		Screen:       string(InitialScreen()),
		SelectedDate: now.Format(DateLayout),
		CatalogSeed:  seed,
		CreatedAt:    now,
	}, nil
}

// SelectFee records the fee choice. An empty feeType clears it.
func SelectFee(s *models.Session, feeType string) error {
	if feeType == "" {
		s.SelectedFee = ""
		return nil
	}
	if !IsKnownFee(feeType) {
		return httperr.ErrBusiness("unknown_fee_type")
	}
	s.SelectedFee = feeType
	return nil
}

// ChangeDate moves the session to date, bounded to [today, endDate]. A prior
// slot pick belongs to another day, so it is always cleared. On rejection the
// session is left untouched.
func ChangeDate(s *models.Session, date string, now, endDate time.Time) error {
	loc := now.Location()

	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, loc)

	if d.Before(today) || d.After(end) {
		return httperr.ErrBusiness("date_out_of_range")
	}

	s.SelectedDate = d.Format(DateLayout)
	s.SelectedSlotID = 0
	return nil
}

// SelectSlot records the slot pick. Full slots are never selectable, no
// matter how the id was obtained, and today's already-started slots are
// rejected the same way the visibility rule hides them.
func SelectSlot(s *models.Session, slot *models.Slot, now time.Time) error {
	if slot == nil {
		return httperr.ErrBusiness("slot_not_found")
	}
	if slot.IsFull() {
		return httperr.ErrBusiness("slot_full")
	}
	if slot.Date == now.Format(DateLayout) && slot.Timestamp <= now.UnixMilli() {
		return httperr.ErrBusiness("slot_in_past")
	}

	s.SelectedSlotID = slot.ID
	return nil
}

// ConfirmBooking issues the ticket and moves the session to the success
// screen. The slot's booked count is intentionally left alone: occupancy is
// generation-time seed data, never a ledger of confirmed bookings.
func ConfirmBooking(s *models.Session, slot *models.Slot, reference string, now time.Time) (*models.Ticket, error) {
	if err := CanConfirm(Screen(s.Screen)); err != nil {
		return nil, err
	}
	if s.SelectedFee == "" {
		return nil, httperr.ErrBusiness("no_fee_selected")
	}
	if s.SelectedSlotID == 0 {
		return nil, httperr.ErrBusiness("no_slot_selected")
	}
	if slot == nil || slot.ID != s.SelectedSlotID {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	amount, _ := FeeAmount(s.SelectedFee)

	ticket := &models.Ticket{
		Reference: reference,
		Email:     s.Email,
		FeeType:   s.SelectedFee,
		FeeAmount: amount,
		SlotDay:   slot.Day,
		SlotDate:  slot.Date,
		SlotTime:  slot.Time,
		IssuedAt:  now,
	}

	s.Ticket = ticket
	s.Screen = string(ScreenSuccess)
	return ticket, nil
}

// Reset clears the fee and slot selections and returns to the dashboard.
func Reset(s *models.Session) error {
	if err := CanReset(Screen(s.Screen)); err != nil {
		return err
	}

	s.SelectedFee = ""
	s.SelectedSlotID = 0
	s.Ticket = nil
	s.Screen = string(ScreenDashboard)
	return nil
}
