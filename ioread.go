package tendril

import (
	"io"

	"github.com/go-tendril/tendril/format"
)

const (
	readAllMinChunk = 16
	readAllMaxChunk = 64 * 1024
)

// ReadAll drains r into a freshly built Tendril, validating each chunk
// read against F as it arrives rather than buffering the whole input
// and validating once at the end. The read buffer starts at 16 bytes
// and doubles after every read up to a 64 KiB ceiling: a short input
// costs a handful of small reads, a long one settles into few
// large ones.
func ReadAll[F format.Format, A Atomicity](r io.Reader) (Tendril[F, A], error) {
	t := New[F, A]()
	size := readAllMinChunk
	buf := make([]byte, size)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			if perr := t.TryPushBytes(buf[:n]); perr != nil {
				return Tendril[F, A]{}, wrapErr("tendril.ReadAll", perr)
			}
		}
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return Tendril[F, A]{}, wrapErr("tendril.ReadAll", err)
		}
		if size < readAllMaxChunk {
			size *= 2
			if size > readAllMaxChunk {
				size = readAllMaxChunk
			}
			buf = make([]byte, size)
		}
	}
}
