package shakecmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

var ctx = func() context.Context {
	ctx := context.Background()
	l, _ := zap.NewProduction()
	ctx = logctx.NewContext(ctx, l)
	return ctx
}()

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "shake",
		Short: "shake: SHAKE128 and SHAKE256 extendable output functions",
	}
	configPath := c.PersistentFlags().String("config", "", "path to a YAML config file")
	getConfig := func() (*Config, error) {
		if *configPath == "" {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return LoadConfig(*configPath)
	}

	c.AddCommand(NewSumCmd(getConfig))
	c.AddCommand(NewDemoCmd())
	c.AddCommand(NewKeygenCmd())
	c.AddCommand(NewCreateConfigCmd())
	return c
}

// ConfigFactory returns the active config, loading it on first use.
type ConfigFactory = func() (*Config, error)
