package models

import "time"

// Ticket is the on-screen confirmation produced by a successful booking.
type Ticket struct {
	Reference string `json:"reference"`

	Email     string `json:"email"`
	FeeType   string `json:"fee_type"`
	FeeAmount int64  `json:"fee_amount"`

	SlotDay  string `json:"slot_day"`
	SlotDate string `json:"slot_date"`
	SlotTime string `json:"slot_time"`

	IssuedAt time.Time `json:"issued_at"`
}
