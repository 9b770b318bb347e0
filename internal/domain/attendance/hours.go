package attendance

import (
	"fmt"
	"time"
)

// StandardWorkHours is the daily threshold beyond which time counts as extra.
const StandardWorkHours = 8

// WorkHours computes the "HH:MM" worked and extra hours strings from the
// check-in/check-out pair. Either timestamp missing yields "00:00" for both.
//
// The extra-hours minute component deliberately reuses the total diff's
// minutes rather than deriving a remainder from the hours over threshold.
// That reproduces the production formula; do not change it without
// confirming the intended business rule.
func WorkHours(checkIn, checkOut *time.Time) (work, extra string) {
	work, extra = "00:00", "00:00"
	if checkIn == nil || checkOut == nil {
		return work, extra
	}

	diff := checkOut.Sub(*checkIn)
	diffHours := int(diff.Hours())
	diffMinutes := int(diff.Minutes()) % 60

	work = fmt.Sprintf("%02d:%02d", diffHours, diffMinutes)

	if diffHours > StandardWorkHours {
		extra = fmt.Sprintf("%02d:%02d", diffHours-StandardWorkHours, diffMinutes)
	}

	return work, extra
}
