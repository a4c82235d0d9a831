package booking

import (
	"context"

	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

// SessionStore isolates each session's state. Implementations live in
// internal/infra/store.
type SessionStore interface {
	Save(ctx context.Context, s *models.Session) error

	// Get returns the session or a "session_not_found" business error.
	Get(ctx context.Context, id string) (*models.Session, error)

	// Delete is idempotent; deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
