package types

import (
	"math/big"
	"unicode/utf8"
)

// BoundedText is a text value clamped to MaxTextLen bytes, matching the
// fixed-length string fields of the commitment structure. Longer input is
// silently truncated, never rejected.
type BoundedText string

// NewBoundedText clamps s to at most MaxTextLen bytes. The cut never splits
// a multi-byte rune, so the result stays valid UTF-8 and survives a JSON
// round trip unchanged.
func NewBoundedText(s string) BoundedText {
	if len(s) > MaxTextLen {
		n := MaxTextLen
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	return BoundedText(s)
}

// String returns the (possibly truncated) text.
func (t BoundedText) String() string {
	return string(t)
}

// Serialize packs the text into a fixed number of field elements, each
// holding TextChunkLen bytes interpreted as a big-endian integer. Unused
// trailing chunks are zero, so two texts of different length never collide
// within the fixed limb layout.
func (t BoundedText) Serialize() []*big.Int {
	data := []byte(t)
	fields := make([]*big.Int, 0, TextFieldLimbs)
	for i := 0; i < TextFieldLimbs; i++ {
		chunk := make([]byte, TextChunkLen)
		if start := i * TextChunkLen; start < len(data) {
			end := start + TextChunkLen
			if end > len(data) {
				end = len(data)
			}
			copy(chunk, data[start:end])
		}
		fields = append(fields, new(big.Int).SetBytes(chunk))
	}
	return fields
}
