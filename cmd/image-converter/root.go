package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/logger"
)

type rootOptions struct {
	verbose   bool
	logFormat string
	cfg       *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "image-converter",
		Short: "Convert images between formats using the conversion service",
		Long: `image-converter uploads an image to the conversion service and writes the
returned file. The service address comes from CONVERTER_ENDPOINT (or a .env
file) and can be overridden per call with --endpoint.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			opts.cfg = cfg

			level := os.Getenv("LOG_LEVEL")
			if opts.verbose {
				level = "debug"
			}
			format := opts.logFormat
			if format == "" {
				format = os.Getenv("LOG_FORMAT")
			}
			logger.Configure(level, format)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: text or json")

	cmd.AddCommand(newConvertCmd(opts))
	cmd.AddCommand(newFormatsCmd())
	return cmd
}
