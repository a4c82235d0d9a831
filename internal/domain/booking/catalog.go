package booking

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/CampusPayServices/fee-slot-booking/internal/models"
)

const (
	MaxStudentsPerSlot = 5
	SlotMinutes        = 15

	OpenHour  = 9
	CloseHour = 17 // exclusive

	LunchStartHour = 12
	LunchEndHour   = 14 // exclusive
)

// OffDay is excluded entirely from slot generation.
const OffDay = time.Sunday

const DateLayout = "2006-01-02"

// Catalog is the flat list of bookable slots for one session. It is
// immutable after generation, so any number of readers may share it.
type Catalog struct {
	slots []models.Slot
	byID  map[int]int
}

// GenerateCatalog enumerates every bookable slot from today through endDate
// inclusive: off-days skipped, 15-minute steps across the working window,
// lunch hours excluded. Occupancy comes from rng; everything else is
// deterministic. An endDate before today yields an empty catalog.
func GenerateCatalog(today, endDate time.Time, rng *rand.Rand) *Catalog {
	loc := today.Location()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, loc)

	c := &Catalog{byID: make(map[int]int)}

	id := 1
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == OffDay {
			continue
		}

		dateStr := d.Format(DateLayout)
		dayName := d.Weekday().String()

		for hour := OpenHour; hour < CloseHour; hour++ {
			if hour >= LunchStartHour && hour < LunchEndHour {
				continue
			}

			for min := 0; min < 60; min += SlotMinutes {
				at := time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, loc)

				c.byID[id] = len(c.slots)
				c.slots = append(c.slots, models.Slot{
					ID:        id,
					Date:      dateStr,
					Day:       dayName,
					Time:      timeLabel(hour, min),
					Timestamp: at.UnixMilli(),
					Booked:    rng.Intn(MaxStudentsPerSlot + 1),
					Max:       MaxStudentsPerSlot,
				})
				id++
			}
		}
	}

	return c
}

func timeLabel(hour, min int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour
	if hour > 12 {
		display = hour - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, min, suffix)
}

func (c *Catalog) Len() int {
	return len(c.slots)
}

func (c *Catalog) Slots() []models.Slot {
	out := make([]models.Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *Catalog) ByID(id int) (models.Slot, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Slot{}, false
	}
	return c.slots[idx], true
}

// ForDate returns the slots visible for date. When date is today, only
// strictly-future slots are included; any other date shows the full day.
func (c *Catalog) ForDate(date string, now time.Time) []models.Slot {
	today := now.Format(DateLayout)

	out := []models.Slot{}
	for _, s := range c.slots {
		if s.Date != date {
			continue
		}
		if date == today && s.Timestamp <= now.UnixMilli() {
			continue
		}
		out = append(out, s)
	}
	return out
}
