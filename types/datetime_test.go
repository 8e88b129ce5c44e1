package types

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestParseUTCTime(t *testing.T) {
	c := qt.New(t)

	// canonical rendering round-trips
	ts, err := ParseUTCTime("2024-06-01T10:20:30.500Z")
	c.Assert(err, qt.IsNil)
	c.Assert(ts.String(), qt.Equals, "2024-06-01T10:20:30.500Z")

	// plain milliseconds are accepted
	ms, err := ParseUTCTime("1717237230500")
	c.Assert(err, qt.IsNil)
	c.Assert(ms, qt.Equals, ts)

	// the zero value renders as the epoch
	c.Assert(UTCTime(0).String(), qt.Equals, "1970-01-01T00:00:00.000Z")

	_, err = ParseUTCTime("yesterday")
	c.Assert(err, qt.IsNotNil)
	_, err = ParseUTCTime("-5")
	c.Assert(err, qt.IsNotNil)
	// pre-epoch dates would yield a negative preimage element
	_, err = ParseUTCTime("1950-01-01T00:00:00Z")
	c.Assert(err, qt.IsNotNil)
}

func TestUTCTimeBigInt(t *testing.T) {
	c := qt.New(t)
	ts, err := ParseUTCTime("1717237230500")
	c.Assert(err, qt.IsNil)
	c.Assert(ts.BigInt().Int64(), qt.Equals, int64(1717237230500))
}
