package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tauraamui/gifreel/pkg/export"
	"github.com/tauraamui/gifreel/pkg/gif"
	"github.com/tauraamui/gifreel/pkg/log"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var scale int
	var label bool

	cmd := &cobra.Command{
		Use:   "export <name> <dir>",
		Short: "Write every composited frame as a PNG plus a manifest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts := export.Options{
				Scale:     cfg.Scale,
				Label:     cfg.Label,
				LabelSize: cfg.LabelSize,
			}
			if cmd.Flags().Changed("scale") {
				opts.Scale = scale
			}
			if cmd.Flags().Changed("label") {
				opts.Label = label
			}

			rc, err := openSource(args[0])
			if err != nil {
				return err
			}
			defer rc.Close()

			log.Info("Decoding %s", args[0])
			anim, err := gif.Decode(rc)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			m, err := export.New(outputFS, opts).Write(args[1], anim)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d frames (%dx%d) to %s [%s]\n",
				len(m.Frames), m.Width, m.Height, args[1], m.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&scale, "scale", 1, "Scale factor applied to every frame")
	cmd.Flags().BoolVar(&label, "label", false, "Stamp each frame with its index and delay")

	return cmd
}
