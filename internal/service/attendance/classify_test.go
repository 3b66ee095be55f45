package attendance

import (
	"testing"
	"time"

	domain "github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.June, 2, hour, minute, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		clockIn time.Time
		want    domain.Status
	}{
		{"early morning is unclassified", at(4, 59), domain.StatusNone},
		{"day opens at five", at(5, 0), domain.StatusPresent},
		{"mid-morning", at(8, 59), domain.StatusPresent},
		{"nine sharp is late", at(9, 0), domain.StatusLate},
		{"afternoon is late", at(16, 59), domain.StatusLate},
		{"day closes at five pm", at(17, 0), domain.StatusNone},
		{"evening is unclassified", at(20, 30), domain.StatusNone},
		{"midnight is unclassified", at(0, 0), domain.StatusNone},
	}
	for _, c := range cases {
		if got := Classify(c.clockIn); got != c.want {
			t.Errorf("%s: Classify(%s) = %q, want %q", c.name, c.clockIn.Format("15:04"), got, c.want)
		}
	}
}

func TestElapsedHMS(t *testing.T) {
	cases := []struct {
		name     string
		from, to time.Time
		want     string
	}{
		{"full workday", at(8, 0), at(17, 0), "09:00:00"},
		{"minutes and seconds", at(9, 15), at(9, 15).Add(95 * time.Second), "00:01:35"},
		{"zero span", at(8, 0), at(8, 0), "00:00:00"},
		{"clock skew floors at zero", at(17, 0), at(8, 0), "00:00:00"},
		{"spans past midnight", at(22, 0), at(22, 0).Add(26 * time.Hour), "26:00:00"},
	}
	for _, c := range cases {
		if got := ElapsedHMS(c.from, c.to); got != c.want {
			t.Errorf("%s: ElapsedHMS = %q, want %q", c.name, got, c.want)
		}
	}
}
