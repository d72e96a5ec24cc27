// Package clock samples wall-clock time and renders it in the fixed set of
// layouts the tools expose. Every derived value comes from one Snapshot so a
// single invocation can never mix fields from two different instants.
package clock

import (
	"time"

	"timemcp/internal/domain"
)

const (
	isoLayout        = "2006-01-02T15:04:05.000Z"
	twelveHourLayout = "1/2/2006, 3:04:05 PM"
	twentyFourLayout = "1/2/2006, 15:04:05"
	dateLayout       = "1/2/2006"
	// Named-zone stamps carry the short zone name, mirroring what a
	// locale-aware formatter emits for timeZoneName: "short".
	zoneStampLayout = "1/2/2006, 3:04:05 PM MST"
)

// Snapshot is one sampled instant.
type Snapshot struct {
	t time.Time
}

// Sample captures the current instant.
func Sample() Snapshot {
	return At(time.Now())
}

// At wraps a fixed instant, mainly for tests.
func At(t time.Time) Snapshot {
	return Snapshot{t: t}
}

// Time returns the underlying instant.
func (s Snapshot) Time() time.Time {
	return s.t
}

// ISO renders the instant as an ISO-8601 UTC timestamp with millisecond
// precision, e.g. 2024-01-15T10:30:00.000Z.
func (s Snapshot) ISO() string {
	return s.t.UTC().Format(isoLayout)
}

// Local renders the instant in the system zone. twentyFour selects 24-hour
// notation; otherwise the string carries an AM/PM marker.
func (s Snapshot) Local(twentyFour bool) string {
	if twentyFour {
		return s.t.Format(twentyFourLayout)
	}
	return s.t.Format(twelveHourLayout)
}

// InZone renders the instant anchored to the named IANA zone. The zone
// lookup error is returned as-is so callers decide whether it is fatal.
func (s Snapshot) InZone(name string, twentyFour bool) (string, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return "", err
	}
	t := s.t.In(loc)
	if twentyFour {
		return t.Format(twentyFourLayout), nil
	}
	return t.Format(twelveHourLayout), nil
}

// ZoneStamped renders the instant in the named zone with a short zone-name
// suffix.
func (s Snapshot) ZoneStamped(name string) (string, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return "", err
	}
	return s.t.In(loc).Format(zoneStampLayout), nil
}

// Info derives the full structured record from the instant, in the system
// zone. The offset follows the JavaScript getTimezoneOffset convention:
// minutes behind UTC are positive.
func (s Snapshot) Info() domain.TimeInfo {
	t := s.t
	_, offsetSeconds := t.Zone()
	return domain.TimeInfo{
		Timestamp:        t.UnixMilli(),
		ISO:              s.ISO(),
		Local:            s.Local(false),
		DayOfWeek:        t.Weekday().String(),
		Date:             t.Format(dateLayout),
		Year:             t.Year(),
		Month:            int(t.Month()),
		Day:              t.Day(),
		Hour:             t.Hour(),
		Minute:           t.Minute(),
		Second:           t.Second(),
		UTCOffsetMinutes: -offsetSeconds / 60,
	}
}
