package booking

import (
	"context"
	"time"

	"github.com/CampusPayServices/fee-slot-booking/internal/audit"
	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

type SelectSlot struct {
	store    domain.SessionStore
	catalogs *domain.CatalogCache
	audit    *audit.Dispatcher

	now func() time.Time
}

func NewSelectSlot(
	store domain.SessionStore,
	catalogs *domain.CatalogCache,
	auditDispatcher *audit.Dispatcher,
) *SelectSlot {
	loc := catalogs.Location()
	return &SelectSlot{
		store:    store,
		catalogs: catalogs,
		audit:    auditDispatcher,
		now:      func() time.Time { return time.Now().In(loc) },
	}
}

func (uc *SelectSlot) Execute(ctx context.Context, sessionID string, slotID int) (*models.Session, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	catalog := uc.catalogs.Get(sess.CatalogSeed, now)

	var slotPtr *models.Slot
	if slot, ok := catalog.ByID(slotID); ok {
		slotPtr = &slot
	}

	if err := domain.SelectSlot(sess, slotPtr, now); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID,
		Action:    "slot_selected",
		Entity:    "slot",
		Metadata:  map[string]int{"slot_id": slotID},
	})

	return sess, nil
}
