package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/CampusPayServices/fee-slot-booking/internal/audit"
	"github.com/CampusPayServices/fee-slot-booking/internal/config"
	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/models"
	"github.com/CampusPayServices/fee-slot-booking/internal/timezone"
)

// ======================================================
// LOGIN
// ======================================================

type LoginInput struct {
	Email string
}

type Login struct {
	store    domain.SessionStore
	catalogs *domain.CatalogCache
	cfg      *config.Config
	audit    *audit.Dispatcher

	now func() time.Time
}

func NewLogin(
	store domain.SessionStore,
	catalogs *domain.CatalogCache,
	cfg *config.Config,
	auditDispatcher *audit.Dispatcher,
) *Login {
	return &Login{
		store:    store,
		catalogs: catalogs,
		cfg:      cfg,
		audit:    auditDispatcher,
		now:      func() time.Time { return timezone.NowIn(cfg.Timezone) },
	}
}

func (uc *Login) Execute(ctx context.Context, in LoginInput) (*models.Session, error) {
	now := uc.now()

	seed := uc.cfg.CatalogSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess, err := domain.NewSession(uuid.NewString(), in.Email, now, seed)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	// warm this session's catalog so the first slot listing is cheap
	uc.catalogs.Get(seed, now)

	uc.audit.Dispatch(audit.Event{
		SessionID: sess.ID,
		Action:    "session_login",
		Entity:    "session",
	})

	return sess, nil
}
