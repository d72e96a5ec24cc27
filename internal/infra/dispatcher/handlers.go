package dispatcher

import (
	"encoding/json"
	"fmt"

	"timemcp/internal/domain"
	"timemcp/internal/infra/clock"
)

// currentTime renders the sampled instant as a single time string. A bad
// timezone identifier is returned as an error: the dispatch boundary wraps
// it into the failure envelope.
func (d *Dispatcher) currentTime(snap clock.Snapshot, args map[string]string) (string, error) {
	timezone := args["timezone"]
	format := args["format"]

	var rendered string
	if timezone == domain.TimezoneSystem {
		switch format {
		case domain.FormatISO:
			rendered = snap.ISO()
		case domain.FormatTwentyFourHour:
			rendered = snap.Local(true)
		default:
			// Unrecognized formats fall back to 12-hour, matching the
			// catalog's declared default.
			rendered = snap.Local(false)
		}
	} else {
		// The iso branch is only honored for the system zone; a named zone
		// always renders as a localized date-time string.
		var err error
		rendered, err = snap.InZone(timezone, format == domain.FormatTwentyFourHour)
		if err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("Current time: %s", rendered), nil
}

// timeInfo builds the structured record. Unlike currentTime, a bad timezone
// identifier does not fail the call: the error is embedded in the record and
// the envelope stays a success.
func (d *Dispatcher) timeInfo(snap clock.Snapshot, args map[string]string) (string, error) {
	timezone := args["timezone"]

	info := snap.Info()
	if timezone != domain.TimezoneSystem {
		stamped, err := snap.ZoneStamped(timezone)
		if err != nil {
			info.TimezoneError = fmt.Sprintf("Invalid timezone: %s", timezone)
		} else {
			info.TimezoneTime = stamped
			info.RequestedTimezone = timezone
		}
	}

	raw, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
