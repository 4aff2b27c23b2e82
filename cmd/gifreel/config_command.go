package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tauraamui/gifreel/internal/config"
	"github.com/tauraamui/gifreel/pkg/configdef"
)

var configCreator = config.DefaultCreator()

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "init",
		Short:       "Write the default configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configCreator.Create()
			if err != nil {
				if errors.Is(err, configdef.ErrConfigAlreadyExists) {
					return fmt.Errorf("%w: %s", err, path)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote default config to %s\n", path)
			return nil
		},
	}
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config ok: scale=%d label=%t label_size=%g log_level=%s\n",
				cfg.Scale, cfg.Label, cfg.LabelSize, cfg.LogLevel)
			return nil
		},
	}
}
