package sponge

import "io"

var (
	_ io.Writer = Writer{}
	_ io.Reader = Reader{}
)

// Writer absorbs everything written to it into Sponge.
type Writer struct {
	Sponge *Sponge
}

func (w Writer) Write(p []byte) (int, error) {
	if err := w.Sponge.Absorb(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Reader squeezes Sponge on every Read. It never returns io.EOF.
type Reader struct {
	Sponge *Sponge
}

func (r Reader) Read(p []byte) (int, error) {
	if err := r.Sponge.Squeeze(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
