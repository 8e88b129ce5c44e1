package types

const (
	// MaxTextLen is the maximum length in bytes of a bounded text field.
	// Longer input is silently truncated.
	MaxTextLen = 128
	// TextChunkLen is the number of bytes packed into a single field
	// element when a text field is serialized.
	TextChunkLen = 31
	// TextFieldLimbs is the fixed number of field elements a bounded text
	// field occupies in a commitment preimage.
	TextFieldLimbs = (MaxTextLen + TextChunkLen - 1) / TextChunkLen
	// RegistryTreeMaxLevels is the maximum number of levels in the
	// commitment registry merkle tree. Leaf keys are full field elements.
	RegistryTreeMaxLevels = 256
	// MaxListLen is the maximum number of identifiers accepted in a single
	// reference list (admins, validators, auditors, plans). It keeps the
	// flattened commitment preimage within the hash input bound.
	MaxListLen = 32
)
