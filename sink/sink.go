// Package sink implements Tendril's push-mode consumers: a Sink accepts
// validated Tendril chunks as they become available, rather than
// requiring the whole input up front. UTF8Validator turns
// raw bytes into validated UTF-8 chunks with zero copying of complete
// codepoints; Decoder additionally runs an external character-encoding
// decoder (via golang.org/x/text/encoding) in front of that validation.
package sink

import (
	tendril "github.com/go-tendril/tendril"
	"github.com/go-tendril/tendril/format"
)

// Sink is the push-mode consumer interface, parametrized by the format
// of Tendril it accepts, its refcount atomicity, and the value it
// produces once the stream ends.
type Sink[F format.Format, A tendril.Atomicity, O any] interface {
	// Process delivers the next chunk of validated content.
	Process(t tendril.Tendril[F, A]) error
	// HandleError reports a recoverable fault (an invalid byte sequence
	// that was skipped, or an external decoder error); the stream
	// continues afterward.
	HandleError(desc string)
	// Finish signals end of input and returns the sink's result.
	Finish() O
}
