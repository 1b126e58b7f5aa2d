package shakecmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"

	"go.keccak.dev/shake/src/keygen"
)

func NewKeygenCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "keygen <passphrase>",
		Short: "derives a signing key pair from a passphrase and prints the public key",
		Args:  cobra.ExactArgs(1),
	}
	d := keygen.DefaultDeriver
	algo := c.Flags().String("algo", keygen.Algo_Dilithium2, strings.Join(d.Algos(), " | "))
	c.RunE = func(cmd *cobra.Command, args []string) error {
		pub, _, err := d.DeriveKey(*algo, []byte(args[0]))
		if err != nil {
			return err
		}
		data, err := d.MarshalPublicKey(nil, pub)
		if err != nil {
			return errors.Wrapf(err, "marshalling %s public key", *algo)
		}
		fp, err := d.Fingerprint(pub)
		if err != nil {
			return err
		}
		logctx.Infof(ctx, "derived %s key, public key is %d bytes", *algo, len(data))
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "algo: %s\n", *algo)
		fmt.Fprintf(w, "fingerprint: %s\n", hex.EncodeToString(fp[:]))
		fmt.Fprintf(w, "public_key: %s\n", hex.EncodeToString(data))
		return nil
	}
	return c
}
