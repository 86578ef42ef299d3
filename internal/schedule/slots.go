// Package schedule produces the salon's bookable time-slot template.
// The schedule is date-independent: every day offers the same slots.
package schedule

import (
	"time"
)

const (
	// Opening hours. A slot is bookable only if the full interval
	// fits before closing.
	OpeningHour  = 9
	ClosingHour  = 18
	SlotInterval = 40 * time.Minute

	TimeLayout = "15:04"
)

// DaySlots returns the ordered slot template for one working day:
// 09:00, 09:40, ... stepping by SlotInterval while the appointment
// still ends by ClosingHour. The result is freshly allocated on
// every call.
func DaySlots() []string {
	open := time.Date(0, time.January, 1, OpeningHour, 0, 0, 0, time.UTC)
	close := time.Date(0, time.January, 1, ClosingHour, 0, 0, 0, time.UTC)

	var slots []string
	for t := open; !t.Add(SlotInterval).After(close); t = t.Add(SlotInterval) {
		slots = append(slots, t.Format(TimeLayout))
	}

	return slots
}
