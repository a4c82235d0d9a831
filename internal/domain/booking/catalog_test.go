package booking

import (
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func TestGenerateCatalog_WeekScenario(t *testing.T) {
	loc := time.UTC
	today := time.Date(2025, 1, 6, 0, 0, 0, 0, loc) // Monday
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, loc)  // Sunday

	c := GenerateCatalog(today, end, rand.New(rand.NewSource(1)))

	// Monday through Saturday, 24 slots each
	if c.Len() != 144 {
		t.Fatalf("expected 144 slots, got %d", c.Len())
	}

	var monday []int
	for i, s := range c.Slots() {
		if s.Date == "2025-01-12" {
			t.Fatalf("slot %d generated on the off-day", s.ID)
		}
		if s.Date == "2025-01-06" {
			monday = append(monday, i)
		}
	}

	if len(monday) != 24 {
		t.Fatalf("expected 24 slots on 2025-01-06, got %d", len(monday))
	}

	slots := c.Slots()
	first := slots[monday[0]]
	if first.ID != 1 || first.Time != "9:00 AM" || first.Day != "Monday" {
		t.Fatalf("unexpected first slot: %+v", first)
	}
	if got := slots[monday[11]].Time; got != "11:45 AM" {
		t.Fatalf("expected slot before lunch at 11:45 AM, got %s", got)
	}
	if got := slots[monday[12]].Time; got != "2:00 PM" {
		t.Fatalf("expected slot after lunch at 2:00 PM, got %s", got)
	}
	if got := slots[monday[23]].Time; got != "4:45 PM" {
		t.Fatalf("expected last slot at 4:45 PM, got %s", got)
	}
}

func TestGenerateCatalog_WindowAndOccupancy(t *testing.T) {
	loc := time.UTC
	today := time.Date(2025, 1, 6, 0, 0, 0, 0, loc)
	end := time.Date(2025, 1, 18, 0, 0, 0, 0, loc)

	c := GenerateCatalog(today, end, rand.New(rand.NewSource(2)))

	for _, s := range c.Slots() {
		at := time.UnixMilli(s.Timestamp).In(loc)

		if at.Weekday() == OffDay {
			t.Fatalf("slot %d falls on %s", s.ID, at.Weekday())
		}
		h := at.Hour()
		if h < OpenHour || h >= CloseHour {
			t.Fatalf("slot %d outside working window: %02d:%02d", s.ID, h, at.Minute())
		}
		if h >= LunchStartHour && h < LunchEndHour {
			t.Fatalf("slot %d inside lunch break: %02d:%02d", s.ID, h, at.Minute())
		}
		if at.Minute()%SlotMinutes != 0 {
			t.Fatalf("slot %d not on a %d-minute boundary", s.ID, SlotMinutes)
		}

		if s.Booked < 0 || s.Booked > MaxStudentsPerSlot {
			t.Fatalf("slot %d occupancy out of range: %d", s.ID, s.Booked)
		}
		if s.Max != MaxStudentsPerSlot {
			t.Fatalf("slot %d capacity = %d", s.ID, s.Max)
		}
	}
}

func TestGenerateCatalog_EmptyWhenEndBeforeStart(t *testing.T) {
	loc := time.UTC
	today := time.Date(2025, 1, 6, 0, 0, 0, 0, loc)
	end := time.Date(2025, 1, 5, 0, 0, 0, 0, loc)

	c := GenerateCatalog(today, end, rand.New(rand.NewSource(1)))
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d slots", c.Len())
	}
}

func TestGenerateCatalog_DeterministicForSeed(t *testing.T) {
	loc := time.UTC
	today := time.Date(2025, 1, 6, 0, 0, 0, 0, loc)
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, loc)

	a := GenerateCatalog(today, end, rand.New(rand.NewSource(7)))
	b := GenerateCatalog(today, end, rand.New(rand.NewSource(7)))

	if !reflect.DeepEqual(a.Slots(), b.Slots()) {
		t.Fatal("same seed produced different catalogs")
	}
}

func TestCatalog_ForDate(t *testing.T) {
	loc := time.UTC
	today := time.Date(2025, 1, 6, 0, 0, 0, 0, loc)
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, loc)

	c := GenerateCatalog(today, end, rand.New(rand.NewSource(3)))

	// viewing today mid-day hides everything already started
	now := time.Date(2025, 1, 6, 12, 30, 0, 0, loc)
	visible := c.ForDate("2025-01-06", now)
	if len(visible) != 12 {
		t.Fatalf("expected 12 future slots on today, got %d", len(visible))
	}
	for _, s := range visible {
		if s.Timestamp <= now.UnixMilli() {
			t.Fatalf("slot %d (%s) is not in the future", s.ID, s.Time)
		}
	}

	// a future date shows the full day regardless of time-of-day
	if got := len(c.ForDate("2025-01-07", now)); got != 24 {
		t.Fatalf("expected 24 slots on a future date, got %d", got)
	}

	if got := len(c.ForDate("2025-01-12", now)); got != 0 {
		t.Fatalf("expected no slots on the off-day, got %d", got)
	}
}

func TestCatalog_ByID(t *testing.T) {
	loc := time.UTC
	today := time.Date(2025, 1, 6, 0, 0, 0, 0, loc)
	end := time.Date(2025, 1, 7, 0, 0, 0, 0, loc)

	c := GenerateCatalog(today, end, rand.New(rand.NewSource(4)))

	s, ok := c.ByID(1)
	if !ok || s.ID != 1 {
		t.Fatalf("expected slot 1, got %+v (ok=%v)", s, ok)
	}

	if _, ok := c.ByID(99999); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestCatalogCache_SharesPerSeed(t *testing.T) {
	loc := time.UTC
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, loc)
	now := time.Date(2025, 1, 6, 10, 0, 0, 0, loc)

	cc := NewCatalogCache(end, loc)

	a := cc.Get(42, now)
	b := cc.Get(42, now)
	if a != b {
		t.Fatal("same seed and day must share one catalog")
	}

	other := cc.Get(43, now)
	if other == a {
		t.Fatal("different seeds must not share a catalog")
	}
}
