package sink

import "github.com/go-tendril/tendril/format"

// IncompleteUTF8 holds the bytes of a UTF-8 sequence truncated at the
// end of a buffer, so a later chunk can complete it without re-scanning
// from the start.
type IncompleteUTF8 struct {
	buf [4]byte
	n   uint8
}

// DecodeUTF8 splits buf into its longest valid UTF-8 prefix and,
// if the buffer ends mid-codepoint, the leftover incomplete bytes to
// pass to TryComplete once more input arrives. A genuinely invalid byte
// (not just a truncated-but-otherwise-good sequence) ends the valid
// prefix at that point; bytes from there on are dropped rather than
// half-validated.
func DecodeUTF8(buf []byte) (valid []byte, incomplete *IncompleteUTF8) {
	i := 0
	for i < len(buf) {
		cp, ok := format.ClassifyUTF8(buf, i)
		if !ok {
			return buf[:i], nil
		}
		if cp.Meaning == format.MeaningPrefix {
			inc := &IncompleteUTF8{}
			inc.n = uint8(copy(inc.buf[:], cp.Bytes))
			return buf[:i], inc
		}
		if cp.Meaning != format.MeaningWhole {
			// Isolated surrogate half: valid WTF-8, not valid UTF-8.
			return buf[:i], nil
		}
		i += len(cp.Bytes)
	}
	return buf, nil
}

// TryComplete appends more to the pending partial sequence. If the
// combined bytes complete a codepoint, it returns that codepoint's
// bytes and whatever of more was left over. If still incomplete, it
// returns (nil, nil) and inc keeps accumulating. If the combination
// turns out to be invalid, inc is reset and all of more is returned as
// rest for the caller to resume scanning from.
func (inc *IncompleteUTF8) TryComplete(more []byte) (completed []byte, rest []byte) {
	combined := append(append([]byte(nil), inc.buf[:inc.n]...), more...)
	cp, ok := format.ClassifyUTF8(combined, 0)
	switch {
	case ok && cp.Meaning == format.MeaningWhole:
		return cp.Bytes, combined[len(cp.Bytes):]
	case ok && cp.Meaning == format.MeaningPrefix:
		inc.n = uint8(copy(inc.buf[:], cp.Bytes))
		return nil, nil
	default:
		inc.n = 0
		return nil, more
	}
}
