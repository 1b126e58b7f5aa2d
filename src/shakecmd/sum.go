package shakecmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"
	"golang.org/x/sync/errgroup"

	"go.keccak.dev/shake/src/shake"
	"go.keccak.dev/shake/src/sponge"
)

// stdin is read when sum is given no files or "-".
var stdin io.Reader = os.Stdin

func NewSumCmd(getConfig ConfigFactory) *cobra.Command {
	c := &cobra.Command{
		Use:   "sum [files...]",
		Short: "prints the SHAKE digest of each file, or of stdin",
	}
	variant := c.Flags().String("variant", "", "128 or 256")
	length := c.Flags().Int("len", -1, "output length in bytes")
	encoding := c.Flags().String("encoding", "", "hex or base64")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		if *variant != "" {
			v, err := shake.ParseVariant(*variant)
			if err != nil {
				return err
			}
			cfg.Variant = int(v)
		}
		if *length >= 0 {
			cfg.Length = *length
		}
		if *encoding != "" {
			cfg.Encoding = *encoding
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		enc, _ := encoder(cfg.Encoding)
		v := shake.Variant(cfg.Variant)

		if len(args) == 0 {
			args = []string{"-"}
		}
		digests := make([][]byte, len(args))
		eg := errgroup.Group{}
		for i := range args {
			i := i
			eg.Go(func() error {
				out, err := sumFile(v, args[i], cfg.Length)
				if err != nil {
					return errors.Wrapf(err, "hashing %s", args[i])
				}
				digests[i] = out
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		logctx.Infof(ctx, "hashed %d inputs with %v", len(args), v)
		w := cmd.OutOrStdout()
		for i, d := range digests {
			if _, err := fmt.Fprintf(w, "%s  %s\n", enc(d), args[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return c
}

// sumFile streams the file at p through one sponge.
func sumFile(v shake.Variant, p string, outLen int) ([]byte, error) {
	var r io.Reader
	if p == "-" {
		r = stdin
	} else {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	s, err := shake.New(v)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(sponge.Writer{Sponge: s}, r); err != nil {
		return nil, err
	}
	if err := s.Finalize(shake.DomainSeparator); err != nil {
		return nil, err
	}
	out := make([]byte, outLen)
	if _, err := io.ReadFull(sponge.Reader{Sponge: s}, out); err != nil {
		return nil, err
	}
	return out, nil
}
