package utils

import "time"

const (
	isoSeconds = "2006-01-02T15:04:05"
	isoMicros  = "2006-01-02T15:04:05.000000"
)

// ISOTimestamp formats t as a zone-less ISO-8601 local time. The fractional
// part has microsecond precision and is omitted when it is zero
func ISOTimestamp(t time.Time) string {
	t = t.Local()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(isoSeconds)
	}
	return t.Format(isoMicros)
}
