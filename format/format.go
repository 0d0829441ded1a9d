// Package format defines the compile-time format tags that parametrize
// Tendril: Bytes, ASCII, UTF8, and WTF8. Each tag knows
// how to validate a complete buffer, validate a prefix/suffix/subsequence
// of one (the checks used when a buffer is split or concatenated without
// a full re-validation pass), and how to fix up a concatenation boundary
// that would otherwise straddle a surrogate pair.
package format

// Format is implemented by marker types that never carry data — Bytes,
// ASCII, UTF8, WTF8 — and exist purely to select validation behavior at
// compile time.
type Format interface {
	// Validate reports whether buf, taken as a complete standalone
	// sequence, is valid for this format.
	Validate(buf []byte) bool

	// ValidatePrefix reports whether buf could be the first part of a
	// longer valid sequence: every byte already in buf must be
	// consistent with the format, even if the final codepoint of buf is
	// itself incomplete.
	ValidatePrefix(buf []byte) bool

	// ValidateSuffix reports whether buf could be the last part of a
	// longer valid sequence: the same as ValidatePrefix but checked from
	// the other end, since a split buffer's tail may begin mid-codepoint.
	ValidateSuffix(buf []byte) bool

	// ValidateSubseq reports whether buf could be a middle slice of a
	// longer valid sequence: both edges may be incomplete.
	ValidateSubseq(buf []byte) bool
}

// Fixupper is implemented by formats that need to repair a concatenation
// boundary, such as WTF-8 re-pairing a surrogate pair that landed on
// either side of a join. Formats without such a rule (Bytes, ASCII,
// UTF8) simply don't implement it; callers type-assert for it.
type Fixupper interface {
	Format

	// Fixup inspects the boundary between lhs and rhs — the bytes
	// already committed on the left and the bytes about to be appended
	// on the right — and reports how to adjust it. The zero Fixup value
	// means "no adjustment needed."
	Fixup(lhs, rhs []byte) Fixup
}

// Fixup describes an adjustment to a concatenation boundary, such as
// WTF-8's surrogate-pairing rule. DropLeft bytes are removed from
// the end of the left-hand buffer, DropRight bytes from the start of the
// right-hand buffer, and InsertBytes[:InsertLen] is spliced in between.
type Fixup struct {
	DropLeft    uint32
	DropRight   uint32
	InsertLen   uint32
	InsertBytes [4]byte
}

// IsNop reports whether a Fixup is the identity adjustment.
func (f Fixup) IsNop() bool {
	return f.DropLeft == 0 && f.DropRight == 0 && f.InsertLen == 0
}
