package duplexread

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timestampTail = "+00:00"

// ParseTimestamp parses a duplex-split timestamp
// ("2006-01-02T15:04:05." + milliseconds + "+00:00") into a UTC time.Time.
// The millisecond field is accepted in any 1-to-3-digit form (not
// necessarily zero-padded), matching externally-produced timestamps that
// predate this engine's own zero-padded writer (see FormatTimestamp).
//
// The original implementation protected its gmtime/strptime calls with a
// pair of module-level mutexes, because those libc functions are not
// reentrant. time.Parse has no such global state, so this reimplementation
// needs no equivalent locking.
func ParseTimestamp(s string) (time.Time, error) {
	if !strings.HasSuffix(s, timestampTail) {
		return time.Time{}, fmt.Errorf("duplexread: timestamp %q missing %q tail", s, timestampTail)
	}
	body := strings.TrimSuffix(s, timestampTail)
	dot := strings.LastIndexByte(body, '.')
	if dot < 0 {
		return time.Time{}, fmt.Errorf("duplexread: timestamp %q missing millisecond separator", s)
	}
	base, msStr := body[:dot], body[dot+1:]
	if len(msStr) == 0 || len(msStr) > 3 {
		return time.Time{}, fmt.Errorf("duplexread: timestamp %q has malformed milliseconds %q", s, msStr)
	}
	ms, err := strconv.Atoi(msStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("duplexread: timestamp %q has non-numeric milliseconds: %w", s, err)
	}
	t, err := time.Parse("2006-01-02T15:04:05", base)
	if err != nil {
		return time.Time{}, fmt.Errorf("duplexread: timestamp %q has invalid base: %w", s, err)
	}
	return t.Add(time.Duration(ms) * time.Millisecond).UTC(), nil
}

// FormatTimestamp renders t in canonical form, with a zero-padded 3-digit
// millisecond field, in UTC.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	ms := t.Nanosecond() / int(time.Millisecond)
	sec := t.Truncate(time.Second)
	return fmt.Sprintf("%s.%03d%s", sec.Format("2006-01-02T15:04:05"), ms, timestampTail)
}

// AdjustTimeMS advances the canonical timestamp ts by offsetMs milliseconds
// and re-renders it in canonical form.
func AdjustTimeMS(ts string, offsetMs uint64) (string, error) {
	t, err := ParseTimestamp(ts)
	if err != nil {
		return "", err
	}
	return FormatTimestamp(t.Add(time.Duration(offsetMs) * time.Millisecond)), nil
}
