package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultSnoozeMinutes is used when neither a duration nor a time is given
	DefaultSnoozeMinutes = 60
	// MaxSnoozeDuration is the longest snooze accepted
	MaxSnoozeDuration = 24 * time.Hour

	clockLayout = "15:04"
)

// MinutesUntil returns the whole minutes from nowUTC until the next occurrence of the
// HH:mm clock time in the zone given by offset. A clock time equal to now refers to
// tomorrow, so the result is always in (0, 1440].
func MinutesUntil(clock string, offset UTCOffset, nowUTC time.Time) (int, error) {
	parsed, err := parseClock(clock)
	if err != nil {
		return 0, err
	}

	loc := offset.Location()
	now := nowUTC.In(loc)
	target := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc)
	if !target.After(now) {
		target = target.Add(24 * time.Hour)
	}

	return int(target.Sub(now) / time.Minute), nil
}

// DurationMinutes validates a requested snooze length and converts it to whole minutes
func DurationMinutes(d time.Duration) (int, error) {
	if d > MaxSnoozeDuration {
		return 0, goerr.Wrap(ErrInvalidDuration, "snooze longer than 24 hours", goerr.V(DurationKey, d.String()))
	}
	if d < time.Minute {
		return 0, goerr.Wrap(ErrInvalidDuration, "snooze shorter than a minute", goerr.V(DurationKey, d.String()))
	}
	return int(d / time.Minute), nil
}

// ValidateClock checks that clock is an HH:mm 24-hour time
func ValidateClock(clock string) error {
	_, err := parseClock(clock)
	return err
}

func parseClock(clock string) (time.Time, error) {
	parsed, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, goerr.Wrap(ErrInvalidTime, "failed to parse clock time",
			goerr.V(ClockKey, clock), goerr.V("cause", err.Error()))
	}
	return parsed, nil
}
