package attendance

import (
	"testing"
	"time"
)

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return &parsed
}

func TestWorkHours(t *testing.T) {
	cases := []struct {
		name      string
		checkIn   string
		checkOut  string
		wantWork  string
		wantExtra string
	}{
		{
			name:      "regular day",
			checkIn:   "2024-03-04T09:00:00Z",
			checkOut:  "2024-03-04T17:30:00Z",
			wantWork:  "08:30",
			wantExtra: "00:00",
		},
		{
			name:      "nine and a half hours",
			checkIn:   "2024-03-04T09:00:00Z",
			checkOut:  "2024-03-04T18:30:00Z",
			wantWork:  "09:30",
			wantExtra: "01:30",
		},
		{
			name:      "ten hours even",
			checkIn:   "2024-03-04T08:00:00Z",
			checkOut:  "2024-03-04T18:00:00Z",
			wantWork:  "10:00",
			wantExtra: "02:00",
		},
		{
			name:      "exactly at threshold",
			checkIn:   "2024-03-04T09:00:00Z",
			checkOut:  "2024-03-04T17:00:00Z",
			wantWork:  "08:00",
			wantExtra: "00:00",
		},
		{
			// extra minutes mirror the total diff's minutes
			name:      "over threshold",
			checkIn:   "2024-03-04T08:00:00Z",
			checkOut:  "2024-03-04T18:45:00Z",
			wantWork:  "10:45",
			wantExtra: "02:45",
		},
		{
			name:      "short day",
			checkIn:   "2024-03-04T10:00:00Z",
			checkOut:  "2024-03-04T13:15:00Z",
			wantWork:  "03:15",
			wantExtra: "00:00",
		},
		{
			name:      "same instant",
			checkIn:   "2024-03-04T09:00:00Z",
			checkOut:  "2024-03-04T09:00:00Z",
			wantWork:  "00:00",
			wantExtra: "00:00",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			work, extra := WorkHours(ts(t, c.checkIn), ts(t, c.checkOut))
			if work != c.wantWork {
				t.Errorf("work = %q, want %q", work, c.wantWork)
			}
			if extra != c.wantExtra {
				t.Errorf("extra = %q, want %q", extra, c.wantExtra)
			}
		})
	}
}

func TestWorkHoursMissingTimestamps(t *testing.T) {
	in := ts(t, "2024-03-04T09:00:00Z")

	for _, c := range []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
	}{
		{"no check-out", in, nil},
		{"no check-in", nil, in},
		{"neither", nil, nil},
	} {
		t.Run(c.name, func(t *testing.T) {
			work, extra := WorkHours(c.checkIn, c.checkOut)
			if work != "00:00" || extra != "00:00" {
				t.Errorf("WorkHours = (%q, %q), want (00:00, 00:00)", work, extra)
			}
		})
	}
}
