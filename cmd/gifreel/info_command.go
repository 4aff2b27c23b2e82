package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tauraamui/gifreel/pkg/gif"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var headerOnly bool
	var listFrames bool

	cmd := &cobra.Command{
		Use:   "info <name>",
		Short: "Describe a GIF animation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := openSource(args[0])
			if err != nil {
				return err
			}
			defer rc.Close()

			out := cmd.OutOrStdout()
			if headerOnly {
				cfg, err := gif.DecodeConfig(rc)
				if err != nil {
					return fmt.Errorf("read header of %s: %w", args[0], err)
				}
				printHeader(out, args[0], cfg)
				return nil
			}

			anim, err := gif.Decode(rc)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			printAnimation(out, args[0], anim, listFrames)
			return nil
		},
	}

	cmd.Flags().BoolVar(&headerOnly, "header", false, "Only read the header and global color table")
	cmd.Flags().BoolVar(&listFrames, "frames", false, "List every frame's delay")

	return cmd
}

func printHeader(out io.Writer, name string, cfg gif.Config) {
	fmt.Fprintf(out, "source:      %s\n", name)
	fmt.Fprintf(out, "size:        %dx%d\n", cfg.Width, cfg.Height)
	fmt.Fprintf(out, "palette:     %d colors\n", cfg.GlobalColors)
	if cfg.GlobalColors > 0 {
		bg := cfg.Background
		fmt.Fprintf(out, "background:  #%02x%02x%02x\n", bg.R, bg.G, bg.B)
	}
}

func printAnimation(out io.Writer, name string, anim *gif.Animation, listFrames bool) {
	fmt.Fprintf(out, "source:      %s\n", name)
	fmt.Fprintf(out, "size:        %dx%d\n", anim.Width, anim.Height)
	fmt.Fprintf(out, "frames:      %d\n", anim.FrameCount())
	fmt.Fprintf(out, "loop:        %s\n", describeLoop(anim.LoopCount))
	fmt.Fprintf(out, "duration:    %s\n", anim.Duration())
	if !listFrames {
		return
	}
	for i, f := range anim.Frames {
		fmt.Fprintf(out, "  frame %d: %dms\n", i, f.Delay)
	}
}

func describeLoop(count int) string {
	switch {
	case count == gif.PlayOnce:
		return "once"
	case count == 0:
		return "forever"
	case count == 1:
		return "1 repeat"
	default:
		return fmt.Sprintf("%d repeats", count)
	}
}
