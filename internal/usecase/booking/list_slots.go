package booking

import (
	"context"
	"time"

	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/dto"
	"github.com/CampusPayServices/fee-slot-booking/internal/httperr"
)

type ListSlots struct {
	store    domain.SessionStore
	catalogs *domain.CatalogCache

	now func() time.Time
}

func NewListSlots(
	store domain.SessionStore,
	catalogs *domain.CatalogCache,
) *ListSlots {
	loc := catalogs.Location()
	return &ListSlots{
		store:    store,
		catalogs: catalogs,
		now:      func() time.Time { return time.Now().In(loc) },
	}
}

// Execute lists the visible slots for the session's selected date, or for
// dateOverride when given (a peek that does not move the session).
func (uc *ListSlots) Execute(ctx context.Context, sessionID, dateOverride string) (*dto.SlotListDTO, error) {
	sess, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	date := sess.SelectedDate

	if dateOverride != "" {
		d, err := time.ParseInLocation(domain.DateLayout, dateOverride, now.Location())
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		date = d.Format(domain.DateLayout)
	}

	catalog := uc.catalogs.Get(sess.CatalogSeed, now)
	slots := catalog.ForDate(date, now)

	out := &dto.SlotListDTO{
		Date:  date,
		Slots: make([]dto.SlotDTO, 0, len(slots)),
	}

	if d, err := time.ParseInLocation(domain.DateLayout, date, now.Location()); err == nil {
		out.Day = d.Weekday().String()
	}

	for _, s := range slots {
		out.Slots = append(out.Slots, dto.SlotDTO{
			ID:       s.ID,
			Time:     s.Time,
			Booked:   s.Booked,
			Max:      s.Max,
			Full:     s.IsFull(),
			Selected: sess.SelectedSlotID == s.ID,
		})
	}

	return out, nil
}
