package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/image-converter/internal/batch"
	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/convert"
	apperrors "github.com/ytget/image-converter/internal/errors"
	"github.com/ytget/image-converter/internal/logger"
	"github.com/ytget/image-converter/internal/model"
)

type convertOptions struct {
	format    string
	output    string
	outputDir string
	endpoint  string
	timeout   time.Duration
	parallel  int
	force     bool
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert INPUT...",
		Short: "Convert image files",
		Long: `Convert each INPUT to the chosen format. Without --output a result is written
as NAME-converted.EXT next to its input (or into --output-dir), never
overwriting an existing file.`,
		Example: `  image-converter convert photo.jpg --format webp
  image-converter convert scan.tiff -f png -o scan.png
  image-converter convert *.bmp -f jpeg --output-dir out --parallel 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, root.cfg, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (default from DEFAULT_FORMAT, else png)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (single input only)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "d", "", "directory for results (default: next to each input)")
	cmd.Flags().StringVarP(&opts.endpoint, "endpoint", "e", "", "conversion service URL (overrides CONVERTER_ENDPOINT)")
	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "t", 0, "request timeout (overrides REQUEST_TIMEOUT)")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", batch.DefaultMaxParallel, "maximum parallel requests")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite --output if it exists")
	return cmd
}

func runConvert(cmd *cobra.Command, cfg *config.Config, opts *convertOptions, inputs []string) error {
	format := cfg.DefaultFormat
	if opts.format != "" {
		parsed, err := model.ParseFormat(opts.format)
		if err != nil {
			return apperrors.NewUserInputError("unknown output format", err)
		}
		format = parsed
	}

	endpoint := cfg.Endpoint
	if opts.endpoint != "" {
		if err := config.ValidateEndpoint(opts.endpoint); err != nil {
			return apperrors.NewUserInputError("invalid endpoint", err)
		}
		endpoint = opts.endpoint
	}

	timeout := cfg.RequestTimeout
	if opts.timeout > 0 {
		timeout = opts.timeout
	}

	if opts.output != "" {
		if len(inputs) > 1 {
			return apperrors.NewUserInputError("--output needs exactly one input; use --output-dir", nil)
		}
		if _, err := os.Stat(opts.output); err == nil && !opts.force {
			return apperrors.NewUserInputError("output file exists (use --force to overwrite)", nil)
		}
	}

	client := convert.NewClient(endpoint,
		convert.WithTimeout(timeout),
		convert.WithMaxUploadSize(cfg.MaxUploadSize),
		convert.WithUserAgent("image-converter-cli/"+version),
	)

	service := batch.NewService(client, opts.parallel)
	service.SetOutputDirectory(opts.outputDir)
	for _, input := range inputs {
		if _, err := service.AddTask(input, format, opts.output); err != nil {
			return apperrors.NewUserInputError("cannot queue "+input, err)
		}
	}

	var outMu sync.Mutex
	out := cmd.OutOrStdout()
	service.SetUpdateCallback(func(task batch.Task) {
		outMu.Lock()
		defer outMu.Unlock()
		switch task.Status {
		case model.PhaseSucceeded:
			fmt.Fprintln(out, task.Output)
		case model.PhaseFailed:
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", task.Input, apperrors.UserMessage(task.Err))
		}
	})

	logger.WithFields(logrus.Fields{
		"inputs":   len(inputs),
		"format":   format.String(),
		"endpoint": endpoint,
	}).Debug("Starting conversion")

	return service.Run(cmd.Context())
}
