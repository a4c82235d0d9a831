package models

import "time"

// Session holds one user's login and selections. It lives in the session
// store for the duration of a browser session and is never shared between
// users.
type Session struct {
	ID    string `json:"id"`
	Email string `json:"email"`

	Screen string `json:"screen"`

	SelectedFee    string `json:"selected_fee"`
	SelectedDate   string `json:"selected_date"` // YYYY-MM-DD
	SelectedSlotID int    `json:"selected_slot_id"`

	// CatalogSeed fixes this session's slot catalog. A new login gets a
	// new seed, so occupancy is re-randomized exactly like a page reload.
	CatalogSeed int64 `json:"catalog_seed"`

	Ticket *Ticket `json:"ticket,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
