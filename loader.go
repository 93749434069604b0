package pnet

import (
	"context"
	"io"
)

// Format names a serialized net format.
type Format string

const (
	PNML Format = "pnml"
	YAML Format = "yaml"
)

// Service loads nets from one serialized format.
type Service interface {
	Load(ctx context.Context, r io.Reader) (*Net, error)
	Format() Format
}

// Flusher writes a rendering of whatever it is given.
type Flusher[T any] interface {
	Flush(w io.Writer, t T) error
}
