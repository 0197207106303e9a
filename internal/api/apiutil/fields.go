package apiutil

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

func ParsePositiveInt64Field(raw string, field string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", field)
	}
	return value, nil
}

// PathID reads a positive integer path value such as {id}.
func PathID(r *http.Request, key string) (int64, error) {
	return ParsePositiveInt64Field(r.PathValue(key), key)
}

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(raw string, field string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	if loc == nil {
		loc = time.UTC
	}
	parsed, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return parsed, nil
}
