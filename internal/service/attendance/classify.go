package attendance

import (
	"fmt"
	"time"

	"github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
)

// Clock-in hour bands. Arrivals before the day opens or after it closes are
// still recorded, just without a status.
const (
	dayOpenHour  = 5
	lateFromHour = 9
	dayCloseHour = 17
)

// Classify maps a clock-in time to its status band by hour of day.
func Classify(clockIn time.Time) attendance.Status {
	h := clockIn.Hour()
	switch {
	case h >= dayOpenHour && h < lateFromHour:
		return attendance.StatusPresent
	case h >= lateFromHour && h < dayCloseHour:
		return attendance.StatusLate
	default:
		return attendance.StatusNone
	}
}

// ElapsedHMS formats the span between two instants as "HH:MM:SS". A clock
// skew that puts the end before the start floors at zero.
func ElapsedHMS(from, to time.Time) string {
	secs := int(to.Sub(from).Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
