package fixtures

import (
	"fmt"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock accepts "HH:MM" or "H:MM AM/PM".
func ParseClock(raw string) (Clock, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Clock{}, validationErrorf("time is required")
	}
	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		formats := []string{"3:04 PM", "03:04 PM", "3:04PM", "03:04PM"}
		for _, format := range formats {
			if parsed, err = time.Parse(format, strings.ToUpper(raw)); err == nil {
				return Clock{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
			}
		}
		return Clock{}, validationErrorf("time %q must be in HH:MM or H:MM AM/PM format", raw)
	}
	return Clock{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) on(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour, c.Minute, 0, 0, date.Location())
}

// TimePolicy assigns the kickoff of the slot-th match (0-based) played on date.
type TimePolicy interface {
	Kickoff(date time.Time, slot int) time.Time
	Validate() error
}

// IntervalPolicy starts the first match at Start and spaces the rest of the
// day's matches IntervalMinutes apart. The hour of day wraps at 24 and the
// kickoff stays on the round date.
type IntervalPolicy struct {
	Start           Clock
	IntervalMinutes int
}

func (p IntervalPolicy) Validate() error {
	if p.IntervalMinutes <= 0 {
		return validationErrorf("intervalMinutes must be greater than 0")
	}
	return nil
}

func (p IntervalPolicy) Kickoff(date time.Time, slot int) time.Time {
	offset := (p.Start.minutes() + slot*p.IntervalMinutes) % minutesPerDay
	return Clock{Hour: offset / 60, Minute: offset % 60}.on(date)
}

// ExplicitTimesPolicy cycles through Times across the matches of a day.
type ExplicitTimesPolicy struct {
	Times []Clock
}

func (p ExplicitTimesPolicy) Validate() error {
	if len(p.Times) == 0 {
		return validationErrorf("times must contain at least one time")
	}
	return nil
}

func (p ExplicitTimesPolicy) Kickoff(date time.Time, slot int) time.Time {
	return p.Times[slot%len(p.Times)].on(date)
}

func truncateDate(value time.Time) time.Time {
	loc := value.Location()
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, loc)
}
