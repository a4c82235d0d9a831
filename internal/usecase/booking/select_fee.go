package booking

import (
	"context"

	"github.com/CampusPayServices/fee-slot-booking/internal/audit"
	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

type SelectFee struct {
	store domain.SessionStore
	audit *audit.Dispatcher
}

func NewSelectFee(store domain.SessionStore, auditDispatcher *audit.Dispatcher) *SelectFee {
	return &SelectFee{store: store, audit: auditDispatcher}
}

func (uc *SelectFee) Execute(ctx context.Context, sessionID, feeType string) (*models.Session, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := domain.SelectFee(sess, feeType); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID,
		Action:    "fee_selected",
		Entity:    "fee",
		Metadata:  map[string]string{"fee_type": feeType},
	})

	return sess, nil
}
