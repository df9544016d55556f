package domain

import (
	"context"
	"log/slog"
	"time"
)

// maxEpochMillis is the largest instant representable by an epoch-millis
// timestamp on the web platform (±100,000,000 days around the epoch).
// Values beyond it cannot have come from a real clock.
const maxEpochMillis = 8_640_000_000_000_000

// NormalizeMillis sanitizes a client-supplied epoch-milliseconds timestamp.
//
// Values within one year before now and one day after now pass through
// unchanged. Values outside that window but still representable as a
// calendar instant also pass through: a backfilled entry from two years
// ago is unusual, not corrupt. For garbage beyond the representable
// range it tries to salvage a plausible timestamp from the first 13
// decimal digits (a common corruption is extra digits appended to an
// epoch-millis value); failing that it falls back to now and logs the
// replacement. It never returns an error: a bad timestamp must not lose
// the tracked interval it belongs to.
//
// A nil input stays nil so callers can distinguish "absent" from "now".
func NormalizeMillis(ctx context.Context, ts *int64, now time.Time) *int64 {
	if ts == nil {
		return nil
	}

	nowMs := TimeToMillis(now)
	yearAgo := TimeToMillis(now.AddDate(-1, 0, 0))
	dayAhead := TimeToMillis(now.AddDate(0, 0, 1))

	v := *ts
	if v > yearAgo && v < dayAhead {
		return ts
	}
	if v >= -maxEpochMillis && v <= maxEpochMillis {
		return ts
	}

	if salvaged, ok := salvageMillis(v, yearAgo); ok {
		slog.WarnContext(ctx, "salvaged malformed timestamp",
			slog.Int64("raw", v),
			slog.Int64("salvaged", salvaged),
		)
		return &salvaged
	}

	slog.WarnContext(ctx, "unusable timestamp replaced with current time",
		slog.Int64("raw", v),
	)
	return &nowMs
}

// maxMillisPrefix is the largest 13-digit value, the width of a
// present-day epoch-millis timestamp.
const maxMillisPrefix = 9_999_999_999_999

// salvageMillis truncates trailing digits of v until at most 13 remain
// and accepts the prefix as long as it is no older than a year. A future
// prefix passes: corruption appends digits to a real instant, it does
// not manufacture one ahead of the clock.
func salvageMillis(v, yearAgo int64) (int64, bool) {
	if v < 0 {
		return 0, false
	}
	for v > maxMillisPrefix {
		v /= 10
	}
	if v > yearAgo {
		return v, true
	}
	return 0, false
}

// TimeToMillis converts t to epoch milliseconds.
func TimeToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// MillisToTime converts epoch milliseconds to a UTC time.
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// DurationMillis returns the elapsed milliseconds between start and end,
// substituting now when end is nil. A negative span clamps to zero.
func DurationMillis(startMs int64, endMs *int64, now time.Time) int64 {
	end := TimeToMillis(now)
	if endMs != nil {
		end = *endMs
	}
	d := end - startMs
	if d < 0 {
		return 0
	}
	return d
}
