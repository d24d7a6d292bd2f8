package main

import (
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/qruri/internal/errorutil"
	"github.com/ghettovoice/qruri/internal/log"
)

type rootOptions struct {
	logFormat string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "qruri",
		Short:         "Extract payment requests from scanned text",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return errtrace.Wrap(opts.setupLog(cmd))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", string(log.FormatConsole), "log format: console or dev")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "minimal log level: debug, info, warn or error")

	cmd.AddCommand(newParseCmd(), newGasCmd())
	return cmd
}

func (o *rootOptions) setupLog(cmd *cobra.Command) error {
	format, err := log.ParseFormat(o.logFormat)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}

	log.SetDefault(log.New(cmd.ErrOrStderr(), format, level))
	return nil
}
