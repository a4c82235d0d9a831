package booking

import (
	"math/rand"
	"testing"
	"time"

	"github.com/CampusPayServices/fee-slot-booking/internal/httperr"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

func newTestSession(t *testing.T, now time.Time) *models.Session {
	t.Helper()

	sess, err := NewSession("sess-1", "a@b.com", now, 42)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return sess
}

func futureSlot(id int, date string, at time.Time) *models.Slot {
	return &models.Slot{
		ID:        id,
		Date:      date,
		Day:       at.Weekday().String(),
		Time:      "9:00 AM",
		Timestamp: at.UnixMilli(),
		Booked:    2,
		Max:       MaxStudentsPerSlot,
	}
}

func TestNewSession(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

	sess := newTestSession(t, now)
	if sess.Screen != string(ScreenDashboard) {
		t.Fatalf("expected dashboard screen, got %s", sess.Screen)
	}
	if sess.SelectedDate != "2025-01-06" {
		t.Fatalf("expected selected date to default to today, got %s", sess.SelectedDate)
	}
	if sess.CatalogSeed != 42 {
		t.Fatalf("expected seed 42, got %d", sess.CatalogSeed)
	}

	if _, err := NewSession("sess-2", "   ", now, 1); !httperr.IsBusiness(err, "empty_email") {
		t.Fatalf("expected empty_email, got %v", err)
	}
}

func TestSelectFee(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	sess := newTestSession(t, now)

	if err := SelectFee(sess, "Semester Fee"); err != nil {
		t.Fatalf("SelectFee: %v", err)
	}
	if sess.SelectedFee != "Semester Fee" {
		t.Fatalf("expected Semester Fee, got %s", sess.SelectedFee)
	}

	if err := SelectFee(sess, "Hostel Fee"); !httperr.IsBusiness(err, "unknown_fee_type") {
		t.Fatalf("expected unknown_fee_type, got %v", err)
	}
	if sess.SelectedFee != "Semester Fee" {
		t.Fatal("rejected fee must not change the selection")
	}

	// empty clears
	if err := SelectFee(sess, ""); err != nil {
		t.Fatalf("clearing fee: %v", err)
	}
	if sess.SelectedFee != "" {
		t.Fatal("expected fee to be cleared")
	}
}

func TestChangeDate(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	sess := newTestSession(t, now)
	sess.SelectedSlotID = 17

	if err := ChangeDate(sess, "2025-01-10", now, endDate); err != nil {
		t.Fatalf("ChangeDate: %v", err)
	}
	if sess.SelectedDate != "2025-01-10" {
		t.Fatalf("expected 2025-01-10, got %s", sess.SelectedDate)
	}
	if sess.SelectedSlotID != 0 {
		t.Fatal("date change must clear the slot selection")
	}

	for _, date := range []string{"2025-01-05", "2025-02-01"} {
		if err := ChangeDate(sess, date, now, endDate); !httperr.IsBusiness(err, "date_out_of_range") {
			t.Fatalf("expected date_out_of_range for %s, got %v", date, err)
		}
		if sess.SelectedDate != "2025-01-10" {
			t.Fatalf("rejected change mutated the date: %s", sess.SelectedDate)
		}
	}

	if err := ChangeDate(sess, "not-a-date", now, endDate); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
}

func TestSelectSlot(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	sess := newTestSession(t, now)

	if err := SelectSlot(sess, nil, now); !httperr.IsBusiness(err, "slot_not_found") {
		t.Fatalf("expected slot_not_found, got %v", err)
	}

	full := futureSlot(5, "2025-01-07", now.AddDate(0, 0, 1))
	full.Booked = full.Max
	if err := SelectSlot(sess, full, now); !httperr.IsBusiness(err, "slot_full") {
		t.Fatalf("expected slot_full, got %v", err)
	}

	// overbooked seed data counts as full too
	full.Booked = full.Max + 1
	if err := SelectSlot(sess, full, now); !httperr.IsBusiness(err, "slot_full") {
		t.Fatalf("expected slot_full for overbooked slot, got %v", err)
	}

	past := futureSlot(6, "2025-01-06", now.Add(-time.Hour))
	if err := SelectSlot(sess, past, now); !httperr.IsBusiness(err, "slot_in_past") {
		t.Fatalf("expected slot_in_past, got %v", err)
	}
	if sess.SelectedSlotID != 0 {
		t.Fatal("rejected picks must not stick")
	}

	ok := futureSlot(7, "2025-01-07", now.AddDate(0, 0, 1))
	if err := SelectSlot(sess, ok, now); err != nil {
		t.Fatalf("SelectSlot: %v", err)
	}
	if sess.SelectedSlotID != 7 {
		t.Fatalf("expected slot 7 selected, got %d", sess.SelectedSlotID)
	}
}

func TestConfirmBooking_Guards(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	slot := futureSlot(3, "2025-01-07", now.AddDate(0, 0, 1))

	// slot without fee
	sess := newTestSession(t, now)
	sess.SelectedSlotID = slot.ID
	if _, err := ConfirmBooking(sess, slot, "ref-1", now); !httperr.IsBusiness(err, "no_fee_selected") {
		t.Fatalf("expected no_fee_selected, got %v", err)
	}

	// fee without slot
	sess = newTestSession(t, now)
	sess.SelectedFee = "College Fee"
	if _, err := ConfirmBooking(sess, nil, "ref-2", now); !httperr.IsBusiness(err, "no_slot_selected") {
		t.Fatalf("expected no_slot_selected, got %v", err)
	}

	if sess.Screen != string(ScreenDashboard) {
		t.Fatal("rejected confirmation must not leave the dashboard")
	}
}

func TestConfirmBooking_TicketWithoutDecrement(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, loc)
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, loc)

	catalog := GenerateCatalog(now, end, rand.New(rand.NewSource(9)))

	var picked models.Slot
	for _, s := range catalog.ForDate("2025-01-07", now) {
		if !s.IsFull() {
			picked = s
			break
		}
	}
	if picked.ID == 0 {
		t.Fatal("no selectable slot in fixture catalog")
	}

	sess := newTestSession(t, now)
	sess.SelectedFee = "Semester Fee"
	if err := SelectSlot(sess, &picked, now); err != nil {
		t.Fatalf("SelectSlot: %v", err)
	}

	ticket, err := ConfirmBooking(sess, &picked, "ref-9", now)
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}

	if ticket.Email != "a@b.com" || ticket.FeeType != "Semester Fee" || ticket.FeeAmount != 2000 {
		t.Fatalf("unexpected ticket: %+v", ticket)
	}
	if ticket.SlotDate != picked.Date || ticket.SlotTime != picked.Time || ticket.SlotDay != picked.Day {
		t.Fatalf("ticket does not describe the picked slot: %+v", ticket)
	}
	if sess.Screen != string(ScreenSuccess) {
		t.Fatalf("expected success screen, got %s", sess.Screen)
	}

	// occupancy is never decremented by a booking
	after, _ := catalog.ByID(picked.ID)
	if after.Booked != picked.Booked {
		t.Fatalf("booked count changed: %d -> %d", picked.Booked, after.Booked)
	}
}

func TestReset(t *testing.T) {
	now := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

	sess := newTestSession(t, now)
	if err := Reset(sess); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state outside success, got %v", err)
	}

	sess.Screen = string(ScreenSuccess)
	sess.SelectedFee = "College Fee"
	sess.SelectedSlotID = 12
	sess.Ticket = &models.Ticket{Reference: "ref"}

	if err := Reset(sess); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if sess.Screen != string(ScreenDashboard) || sess.SelectedFee != "" || sess.SelectedSlotID != 0 || sess.Ticket != nil {
		t.Fatalf("reset left state behind: %+v", sess)
	}
	if sess.Email != "a@b.com" {
		t.Fatal("reset must keep the login")
	}
}
