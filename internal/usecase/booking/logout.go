package booking

import (
	"context"

	"github.com/CampusPayServices/fee-slot-booking/internal/audit"
	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
)

type Logout struct {
	store domain.SessionStore
	audit *audit.Dispatcher
}

func NewLogout(store domain.SessionStore, auditDispatcher *audit.Dispatcher) *Logout {
	return &Logout{store: store, audit: auditDispatcher}
}

// Execute discards the session entirely. The next login starts from scratch
// with a freshly seeded catalog.
func (uc *Logout) Execute(ctx context.Context, sessionID string) error {
	if err := uc.store.Delete(ctx, sessionID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: sessionID,
		Action:    "session_logout",
		Entity:    "session",
	})

	return nil
}
