// Package biztime provides utilities for lab timezone calculations.
// All storage and transport use UTC. The lab timezone is only used for
// calculating the calendar-day boundaries that bucket UUT sequence numbers.
//
// Design principles:
// - All time storage is in UTC
// - Day bucketing must calculate lab timezone boundaries first, then convert to UTC
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default lab timezone.
	DefaultTimezone = "Asia/Kolkata"
)

var (
	labLocation     *time.Location
	labLocationOnce sync.Once
	initErr         error
)

// Init initializes the lab timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Kolkata.
func Init(tz string) error {
	labLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		labLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the lab timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize lab timezone %q: %v", tz, err))
	}
}

// Location returns the lab timezone location, auto-initializing with the
// default timezone when Init was never called.
func Location() *time.Location {
	if labLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return labLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DayOf returns the calendar day containing t in the lab timezone, with the
// time component stripped (midnight UTC carrying the lab date). This is the
// canonical form of the day bucket used by the sequence allocator; its
// Year/Month/Day accessors yield the lab calendar date.
func DayOf(t time.Time) time.Time {
	labTime := t.In(Location())
	return time.Date(labTime.Year(), labTime.Month(), labTime.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfDayUTC returns the start of day (00:00:00) in lab timezone, converted to UTC.
func StartOfDayUTC(t time.Time) time.Time {
	labTime := t.In(Location())
	startOfDay := time.Date(labTime.Year(), labTime.Month(), labTime.Day(), 0, 0, 0, 0, Location())
	return startOfDay.UTC()
}

// EndOfDayUTC returns the end of day (23:59:59.999999999) in lab timezone, converted to UTC.
func EndOfDayUTC(t time.Time) time.Time {
	labTime := t.In(Location())
	endOfDay := time.Date(labTime.Year(), labTime.Month(), labTime.Day(), 23, 59, 59, 999999999, Location())
	return endOfDay.UTC()
}

// ParseDateInLabTimezone parses a date string (YYYY-MM-DD) as lab timezone midnight,
// then returns the UTC equivalent.
func ParseDateInLabTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

// FormatInLabTimezone formats a UTC time as a string in lab timezone.
func FormatInLabTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
