package booking

import (
	"context"

	"github.com/CampusPayServices/fee-slot-booking/internal/audit"
	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

type Reset struct {
	store domain.SessionStore
	audit *audit.Dispatcher
}

func NewReset(store domain.SessionStore, auditDispatcher *audit.Dispatcher) *Reset {
	return &Reset{store: store, audit: auditDispatcher}
}

func (uc *Reset) Execute(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := domain.Reset(sess); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID,
		Action:    "session_reset",
		Entity:    "session",
	})

	return sess, nil
}
