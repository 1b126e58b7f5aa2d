package shake

import (
	"context"

	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/sync/errgroup"

	"go.keccak.dev/shake/src/sponge"
)

// Scheme is a Variant used through a New/Absorb/Expand interface.
// Expand finalizes on first use, so every Absorb must come before the first Expand.
type Scheme struct {
	Variant Variant
}

// New creates a new instance of the XOF
func (sch Scheme) New() (*sponge.Sponge, error) {
	return New(sch.Variant)
}

// Absorb appends data to the input of the XOF.
func (sch Scheme) Absorb(s *sponge.Sponge, data []byte) error {
	return s.Absorb(data)
}

// Expand reads out data from the XOF.
func (sch Scheme) Expand(s *sponge.Sponge, out []byte) error {
	if s.Phase() == sponge.Absorbing {
		if err := s.Finalize(DomainSeparator); err != nil {
			return err
		}
	}
	return s.Squeeze(out)
}

// DeriveKey256 absorbs base then info and fills dst.
func (sch Scheme) DeriveKey256(dst []byte, base *[32]byte, info []byte) error {
	s, err := sch.New()
	if err != nil {
		return err
	}
	if err := sch.Absorb(s, base[:]); err != nil {
		return err
	}
	if err := sch.Absorb(s, info); err != nil {
		return err
	}
	return sch.Expand(s, dst)
}

// SumAll computes outLen bytes of v for every input concurrently.
// Each input gets its own sponge.
func SumAll(ctx context.Context, v Variant, inputs [][]byte, outLen int) ([][]byte, error) {
	if v.Rate() == 0 {
		return nil, ErrInvalidVariant{Bits: int(v)}
	}
	outs := make([][]byte, len(inputs))
	eg, ctx := errgroup.WithContext(ctx)
	for i := range inputs {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := XOF(v, inputs[i], outLen)
			if err != nil {
				return err
			}
			outs[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	logctx.Infof(ctx, "computed %d %v digests", len(inputs), v)
	return outs, nil
}
