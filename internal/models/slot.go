package models

type Slot struct {
	ID int `json:"id"`

	Date string `json:"date"` // YYYY-MM-DD
	Day  string `json:"day"`  // weekday name, derived from Date
	Time string `json:"time"` // 12-hour label, e.g. "9:00 AM"

	// Unix milliseconds of the slot start, used for past checks.
	Timestamp int64 `json:"timestamp"`

	Booked int `json:"booked"`
	Max    int `json:"max"`
}

// IsFull reports whether the slot can no longer be selected. Booked is
// seeded at generation time and may already exceed Max.
func (s *Slot) IsFull() bool {
	return s.Booked >= s.Max
}
