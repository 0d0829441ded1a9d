package format

// Bytes is the format tag for an uninterpreted byte sequence: every
// buffer is valid, at every granularity.
type Bytes struct{}

func (Bytes) Validate(buf []byte) bool       { return true }
func (Bytes) ValidatePrefix(buf []byte) bool { return true }
func (Bytes) ValidateSuffix(buf []byte) bool { return true }
func (Bytes) ValidateSubseq(buf []byte) bool { return true }
