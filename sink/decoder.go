package sink

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	tendril "github.com/go-tendril/tendril"
	"github.com/go-tendril/tendril/format"
)

// Decoder drives an external, non-UTF-8-native character encoding
// through golang.org/x/text/encoding, validating its output as UTF-8
// before handing it to Inner.
type Decoder[A tendril.Atomicity, O any] struct {
	transformer transform.Transformer
	validator   *UTF8Validator[A, O]
	scratch     []byte
}

// NewDecoder builds a Decoder that converts bytes encoded as enc into
// validated UTF-8 chunks delivered to inner.
func NewDecoder[A tendril.Atomicity, O any](enc encoding.Encoding, inner Sink[format.UTF8, A, O]) *Decoder[A, O] {
	return &Decoder[A, O]{
		transformer: enc.NewDecoder(),
		validator:   NewUTF8Validator[A, O](inner),
		scratch:     make([]byte, 4096),
	}
}

// Process feeds raw, enc-encoded bytes through the decoder.
func (d *Decoder[A, O]) Process(raw tendril.Tendril[format.Bytes, A]) error {
	src := raw.AsBytesView()
	for {
		nDst, nSrc, err := d.transformer.Transform(d.scratch, src, false)
		if nDst > 0 {
			chunk := tendril.FromByteSliceUnchecked[format.Bytes, A](d.scratch[:nDst])
			if verr := d.validator.Process(chunk); verr != nil {
				return verr
			}
		}
		src = src[nSrc:]

		switch err {
		case transform.ErrShortDst:
			continue // scratch filled up; drain again with the same remaining src
		case transform.ErrShortSrc:
			return nil // src ends mid-sequence; wait for the next Process call
		case nil:
			if len(src) == 0 {
				return nil
			}
			continue
		default:
			// The external decoder can't make progress at the current
			// position: report it, emit a replacement, skip the
			// offending byte, and keep decoding the remainder.
			d.validator.Inner.HandleError("tendril/sink: external decoder fault: " + err.Error())
			if rerr := d.validator.emitReplacement(); rerr != nil {
				return rerr
			}
			if len(src) == 0 {
				return nil
			}
			src = src[1:]
			continue
		}
	}
}

// Finish flushes the external decoder's trailing state and returns the
// inner sink's result.
func (d *Decoder[A, O]) Finish() O {
	for {
		nDst, _, err := d.transformer.Transform(d.scratch, nil, true)
		if nDst > 0 {
			_ = d.validator.Process(tendril.FromByteSliceUnchecked[format.Bytes, A](d.scratch[:nDst]))
		}
		if err != transform.ErrShortDst {
			break
		}
	}
	return d.validator.Finish()
}
