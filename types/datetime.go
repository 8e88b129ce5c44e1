package types

import (
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// utcTimeLayout is the canonical rendering of a timestamp: RFC3339 with
// millisecond precision, always in UTC.
const utcTimeLayout = "2006-01-02T15:04:05.000Z"

// UTCTime is a timestamp encoded as a field element holding milliseconds
// since the Unix epoch. The zero value renders as the epoch itself.
type UTCTime int64

// ParseUTCTime parses a timestamp string. Both the canonical RFC3339 form
// and a plain decimal milliseconds value are accepted.
func ParseUTCTime(s string) (UTCTime, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		ms := ts.UnixMilli()
		if ms < 0 {
			return 0, fmt.Errorf("invalid UTC timestamp %q: before the epoch", s)
		}
		return UTCTime(ms), nil
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid UTC timestamp %q: %w", s, err)
	}
	if ms < 0 {
		return 0, fmt.Errorf("invalid UTC timestamp %q: negative", s)
	}
	return UTCTime(ms), nil
}

// String returns the canonical RFC3339 UTC rendering.
func (t UTCTime) String() string {
	return t.Time().UTC().Format(utcTimeLayout)
}

// Time converts the value to a time.Time.
func (t UTCTime) Time() time.Time {
	return time.UnixMilli(int64(t))
}

// BigInt returns the timestamp as a field element.
func (t UTCTime) BigInt() *big.Int {
	return big.NewInt(int64(t))
}
