package chromium

import "time"

// Chromium stores timestamps as microseconds since 1601-01-01T00:00:00Z.
// This is the offset between that epoch and the Unix epoch, in seconds.
const chromeEpochOffsetSec = 11644473600

// TimeFromChromeEpoch converts a raw Chromium timestamp to a UTC instant.
// Zero and negative values mean "no timestamp recorded" and return the zero
// time.Time so callers can omit the field instead of emitting a pre-epoch date.
func TimeFromChromeEpoch(raw int64) time.Time {
	if raw <= 0 {
		return time.Time{}
	}
	sec := raw/1e6 - chromeEpochOffsetSec
	usec := raw % 1e6
	return time.Unix(sec, usec*1000).UTC()
}

// TimeToChromeEpoch converts a UTC instant back to Chromium microseconds.
// Used to push the export window's lower bound into the SQL query.
func TimeToChromeEpoch(t time.Time) int64 {
	return (t.Unix()+chromeEpochOffsetSec)*1e6 + int64(t.Nanosecond())/1000
}
