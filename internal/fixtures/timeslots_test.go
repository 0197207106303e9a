package fixtures

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		raw     string
		want    Clock
		wantErr bool
	}{
		{raw: "18:30", want: Clock{Hour: 18, Minute: 30}},
		{raw: " 09:05 ", want: Clock{Hour: 9, Minute: 5}},
		{raw: "7:15 pm", want: Clock{Hour: 19, Minute: 15}},
		{raw: "12:00AM", want: Clock{Hour: 0, Minute: 0}},
		{raw: "", wantErr: true},
		{raw: "25:00", wantErr: true},
		{raw: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseClock(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIntervalPolicyWrapsHourOfDay(t *testing.T) {
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	policy := IntervalPolicy{Start: Clock{Hour: 22, Minute: 30}, IntervalMinutes: 60}

	want := []string{"22:30", "23:30", "00:30", "01:30"}
	for slot, w := range want {
		got := policy.Kickoff(date, slot)
		if got.Format("15:04") != w {
			t.Fatalf("slot %d: expected %s, got %s", slot, w, got.Format("15:04"))
		}
		if got.Day() != 14 {
			t.Fatalf("slot %d: expected kickoff to stay on the round date, got %s", slot, got)
		}
	}
}

func TestExplicitTimesPolicyCycles(t *testing.T) {
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	policy := ExplicitTimesPolicy{Times: []Clock{{Hour: 18}, {Hour: 19, Minute: 30}, {Hour: 21}}}

	want := []string{"18:00", "19:30", "21:00", "18:00", "19:30"}
	for slot, w := range want {
		if got := policy.Kickoff(date, slot).Format("15:04"); got != w {
			t.Fatalf("slot %d: expected %s, got %s", slot, w, got)
		}
	}
}

func TestKickoffKeepsDateLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	date := time.Date(2025, 6, 14, 0, 0, 0, 0, loc)
	got := IntervalPolicy{Start: Clock{Hour: 9}, IntervalMinutes: 30}.Kickoff(date, 1)
	if got.Location() != loc || got.Hour() != 9 || got.Minute() != 30 {
		t.Fatalf("expected 09:30 in %s, got %s", loc, got)
	}
}
