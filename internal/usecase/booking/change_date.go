package booking

import (
	"context"
	"time"

	"github.com/CampusPayServices/fee-slot-booking/internal/audit"
	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

type ChangeDate struct {
	store   domain.SessionStore
	endDate time.Time
	audit   *audit.Dispatcher

	now func() time.Time
}

func NewChangeDate(
	store domain.SessionStore,
	endDate time.Time,
	loc *time.Location,
	auditDispatcher *audit.Dispatcher,
) *ChangeDate {
	return &ChangeDate{
		store:   store,
		endDate: endDate,
		audit:   auditDispatcher,
		now:     func() time.Time { return time.Now().In(loc) },
	}
}

func (uc *ChangeDate) Execute(ctx context.Context, sessionID, date string) (*models.Session, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := domain.ChangeDate(sess, date, uc.now(), uc.endDate); err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID,
		Action:    "date_changed",
		Entity:    "session",
		Metadata:  map[string]string{"date": sess.SelectedDate},
	})

	return sess, nil
}
