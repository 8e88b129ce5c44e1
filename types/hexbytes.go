package types

import (
	"encoding/hex"
	"fmt"

	"github.com/vocdoni/community-registry/util"
)

// HexBytes is a []byte which encodes as hexadecimal in JSON. The "0x" prefix
// is accepted on input and omitted on output.
type HexBytes []byte

// String returns the hexadecimal string representation.
func (b HexBytes) String() string {
	return hex.EncodeToString(b)
}

// SetString decodes a hex string into b. An optional "0x" prefix is allowed.
func (b *HexBytes) SetString(s string) error {
	s = util.TrimHex(s)
	data, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid hex string %q: %w", s, err)
	}
	*b = data
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (b HexBytes) MarshalJSON() ([]byte, error) {
	enc := make([]byte, hex.EncodedLen(len(b))+2)
	enc[0] = '"'
	hex.Encode(enc[1:], b)
	enc[len(enc)-1] = '"'
	return enc, nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *HexBytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid JSON string: %q", data)
	}
	return b.SetString(string(data[1 : len(data)-1]))
}
