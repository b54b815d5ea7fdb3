package timezone_test

import (
	"testing"
	"time"

	"salesdesk/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("expected converted time to have a location")
	}

	if !appTime.Equal(utcTime) {
		t.Error("conversion must not change the instant")
	}
}

func TestFormatAndParse(t *testing.T) {
	testTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(testTime, "2006-01-02")
	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2025-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.June || parsed.Day() != 1 {
		t.Errorf("parsed wrong date: %v", parsed)
	}
}
