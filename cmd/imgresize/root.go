package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phambaophuc/imgresize/internal/config"
	"github.com/phambaophuc/imgresize/internal/prompt"
	"github.com/phambaophuc/imgresize/internal/services/processor"
)

type rootOptions struct {
	width   int
	height  int
	scale   float64
	output  string
	quality int
	yes     bool
	debug   bool
}

func newRootCmd(o *rootOptions, cfg *config.Config, log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imgresize <path_to_image>",
		Short: "resize an image",
		Long: `Resize an image by width, height or scale factor.

Given only --width or only --height, the other side keeps the original proportions.
Given both, you are asked before proportions are broken.
--scale cannot be combined with --width or --height.

The result is written as <name>__<width>x<height>.<ext> into --output,
or next to the original image when --output is not set.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resizeFunc(cmd, args, o, cfg, log)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&o.width, "width", 0, "result image width (also -wt)")
	flags.IntVar(&o.height, "height", 0, "result image height (also -ht)")
	flags.Float64VarP(&o.scale, "scale", "s", 0, "increase image N times")
	flags.StringVarP(&o.output, "output", "o", "", "result image location")
	flags.IntVar(&o.quality, "quality", 0, "JPEG quality 1-100, overrides JPEG_QUALITY")
	flags.BoolVarP(&o.yes, "yes", "y", false, "continue with broken proportions without asking")
	flags.BoolVar(&o.debug, "debug", false, "print error stack traces")

	return cmd
}

func resizeFunc(cmd *cobra.Command, args []string, o *rootOptions, cfg *config.Config, log *zap.Logger) error {
	flags := cmd.Flags()
	opts := processor.Options{SourcePath: args[0], OutputDir: o.output}
	if flags.Changed("width") {
		opts.Width = &o.width
	}
	if flags.Changed("height") {
		opts.Height = &o.height
	}
	if flags.Changed("scale") {
		opts.Scale = &o.scale
	}

	req, err := processor.ResolveRequest(opts)
	if err != nil {
		return err
	}

	imgCfg := cfg.Image
	if flags.Changed("quality") {
		imgCfg.JPEGQuality = config.ClampQuality(o.quality)
	}

	confirm := prompt.NewConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
	if o.yes {
		confirm = prompt.AlwaysYes
	}

	p := processor.NewImageProcessor(processor.NewImagingCodec(imgCfg), confirm, log)
	res, err := p.Process(req)
	if err != nil {
		return err
	}

	if res.Aborted {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, nothing was written.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.OutputPath)
	return nil
}

// run executes the command line and returns the process exit code.
func run(args []string, cfg *config.Config, log *zap.Logger, in io.Reader, out, errOut io.Writer) int {
	var o rootOptions
	cmd := newRootCmd(&o, cfg, log)
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); o.debug && ok {
			fmt.Fprintln(errOut, stackFramer.ErrorStack())
		} else {
			fmt.Fprintln(errOut, "Error:", err)
		}
		return 1
	}
	return 0
}
