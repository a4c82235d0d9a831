package booking

import (
	"context"

	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

type GetSession struct {
	store domain.SessionStore
}

func NewGetSession(store domain.SessionStore) *GetSession {
	return &GetSession{store: store}
}

func (uc *GetSession) Execute(ctx context.Context, sessionID string) (*models.Session, error) {
	return uc.store.Get(ctx, sessionID)
}
