package sink

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"

	tendril "github.com/go-tendril/tendril"
	"github.com/go-tendril/tendril/format"
)

// NewISO88591Decoder builds a Decoder for Latin-1 (ISO 8859-1) input,
// the common case for legacy Western European text.
func NewISO88591Decoder[A tendril.Atomicity, O any](inner Sink[format.UTF8, A, O]) *Decoder[A, O] {
	return NewDecoder[A, O](charmap.ISO8859_1, inner)
}

// NewShiftJISDecoder builds a Decoder for Shift-JIS input.
func NewShiftJISDecoder[A tendril.Atomicity, O any](inner Sink[format.UTF8, A, O]) *Decoder[A, O] {
	return NewDecoder[A, O](japanese.ShiftJIS, inner)
}

// NewEUCKRDecoder builds a Decoder for EUC-KR input.
func NewEUCKRDecoder[A tendril.Atomicity, O any](inner Sink[format.UTF8, A, O]) *Decoder[A, O] {
	return NewDecoder[A, O](korean.EUCKR, inner)
}
