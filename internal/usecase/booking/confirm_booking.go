package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CampusPayServices/fee-slot-booking/internal/audit"
	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

// ======================================================
// CONFIRM BOOKING
// ======================================================

type ConfirmBooking struct {
	store    domain.SessionStore
	catalogs *domain.CatalogCache
	audit    *audit.Dispatcher

	now func() time.Time
}

func NewConfirmBooking(
	store domain.SessionStore,
	catalogs *domain.CatalogCache,
	auditDispatcher *audit.Dispatcher,
) *ConfirmBooking {
	loc := catalogs.Location()
	return &ConfirmBooking{
		store:    store,
		catalogs: catalogs,
		audit:    auditDispatcher,
		now:      func() time.Time { return time.Now().In(loc) },
	}
}

func (uc *ConfirmBooking) Execute(ctx context.Context, sessionID string) (*models.Ticket, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	catalog := uc.catalogs.Get(sess.CatalogSeed, now)

	var slotPtr *models.Slot
	if slot, ok := catalog.ByID(sess.SelectedSlotID); ok {
		slotPtr = &slot
	}

	ticket, err := domain.ConfirmBooking(sess, slotPtr, uuid.NewString(), now)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID,
		Action:    "booking_confirmed",
		Entity:    "booking",
		Metadata: map[string]any{
			"fee_type":  ticket.FeeType,
			"slot_id":   sess.SelectedSlotID,
			"slot_date": ticket.SlotDate,
			"reference": ticket.Reference,
		},
	})

	return ticket, nil
}
