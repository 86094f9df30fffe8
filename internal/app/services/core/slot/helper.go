package slot

import (
	"fmt"

	"myhealthcare-service/internal/pkg/constvars"
)

// GenerateDailySlots returns every bookable slot of a working day, in order.
// The day runs 08:00 through 16:30 in half-hour steps, 18 slots in total.
func GenerateDailySlots() []string {
	slots := make([]string, 0, constvars.SlotCount)
	hour := constvars.SlotStartHour
	minute := constvars.SlotStartMinute
	for {
		slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		if hour == constvars.SlotEndHour && minute == constvars.SlotEndMinute {
			break
		}
		minute += constvars.SlotStepMinutes
		if minute >= 60 {
			minute = 0
			hour++
		}
	}
	return slots
}

// IsValidSlot reports whether the given HH:MM string is one of the
// bookable slots.
func IsValidSlot(slotTime string) bool {
	for _, slot := range GenerateDailySlots() {
		if slot == slotTime {
			return true
		}
	}
	return false
}
