// Package ttesting provides test utilities shared across the tendril
// module's packages.
package ttesting

import (
	tendril "github.com/go-tendril/tendril"
	"github.com/go-tendril/tendril/format"
)

// MockSink records every chunk a Sink receives, for asserting what a
// validator or decoder produced.
type MockSink[F format.Format, A tendril.Atomicity] struct {
	Chunks []string
	Errors []string
	Done   bool
}

// NewMockSink creates an empty MockSink.
func NewMockSink[F format.Format, A tendril.Atomicity]() *MockSink[F, A] {
	return &MockSink[F, A]{}
}

func (m *MockSink[F, A]) Process(t tendril.Tendril[F, A]) error {
	m.Chunks = append(m.Chunks, t.String())
	return nil
}

func (m *MockSink[F, A]) HandleError(desc string) {
	m.Errors = append(m.Errors, desc)
}

// Finish marks the sink done and returns the concatenation of every
// chunk it received.
func (m *MockSink[F, A]) Finish() string {
	m.Done = true
	joined := ""
	for _, c := range m.Chunks {
		joined += c
	}
	return joined
}
