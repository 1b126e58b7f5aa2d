package shakecmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"
)

func NewCreateConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-config <path>",
		Short: "writes the default config to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := args[0]
			if _, err := os.Stat(p); err == nil {
				return errors.Errorf("config already exists at %s", p)
			}
			if err := SaveConfig(p, DefaultConfig()); err != nil {
				return err
			}
			logctx.Infof(ctx, "wrote config to %s", p)
			return nil
		},
	}
}
