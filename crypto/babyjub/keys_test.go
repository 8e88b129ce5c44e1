package babyjub

import (
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/fxamacker/cbor/v2"
)

func TestPublicKeyStringRoundTrip(t *testing.T) {
	c := qt.New(t)

	_, pub := GenerateKey()
	parsed, err := PublicKeyFromString(pub.String())
	c.Assert(err, qt.IsNil)
	c.Assert(parsed.Equal(pub), qt.IsTrue)
}

func TestEmptyPublicKey(t *testing.T) {
	c := qt.New(t)

	empty := EmptyPublicKey()
	c.Assert(empty.IsEmpty(), qt.IsTrue)
	c.Assert(empty.X.Sign(), qt.Equals, 0)
	c.Assert(empty.Y.Int64(), qt.Equals, int64(1))

	// the empty key has a stable base58 form that parses back
	parsed, err := PublicKeyFromString(empty.String())
	c.Assert(err, qt.IsNil)
	c.Assert(parsed.IsEmpty(), qt.IsTrue)

	_, pub := GenerateKey()
	c.Assert(pub.IsEmpty(), qt.IsFalse)
}

func TestPublicKeyFromStringFailures(t *testing.T) {
	c := qt.New(t)

	for _, s := range []string{
		"",
		"not-base58",
		"0OIl",
		"abc", // valid base58 alphabet, wrong length and checksum
	} {
		_, err := PublicKeyFromString(s)
		c.Assert(err, qt.IsNotNil, qt.Commentf("input: %q", s))
	}
}

func TestPublicKeySerialize(t *testing.T) {
	c := qt.New(t)

	_, pub := GenerateKey()
	coords := pub.Serialize()
	c.Assert(coords, qt.HasLen, 2)
	c.Assert(coords[0].Cmp(pub.X), qt.Equals, 0)
	c.Assert(coords[1].Cmp(pub.Y), qt.Equals, 0)

	// the returned values are copies
	coords[0].SetInt64(0)
	c.Assert(pub.X.Sign(), qt.Not(qt.Equals), 0)
}

func TestPublicKeyCodecs(t *testing.T) {
	c := qt.New(t)

	_, pub := GenerateKey()

	jdata, err := json.Marshal(pub)
	c.Assert(err, qt.IsNil)
	jkey := &PublicKey{}
	c.Assert(json.Unmarshal(jdata, jkey), qt.IsNil)
	c.Assert(jkey.Equal(pub), qt.IsTrue)

	cdata, err := cbor.Marshal(pub)
	c.Assert(err, qt.IsNil)
	ckey := &PublicKey{}
	c.Assert(cbor.Unmarshal(cdata, ckey), qt.IsNil)
	c.Assert(ckey.Equal(pub), qt.IsTrue)
}
