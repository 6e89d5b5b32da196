package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/viant/procman"
	"github.com/viant/procman/internal/logutil"
)

// options defines flags shared by every subcommand
type options struct {
	configURL string
	logLevel  string
	logFile   string
	trace     string
}

func newOptions() *options {
	return &options{}
}

func (o *options) addFlags(c *cobra.Command) {
	c.PersistentFlags().StringVarP(&o.configURL, "config", "c", "", "configuration URL (any afs scheme)")
	c.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	c.PersistentFlags().StringVar(&o.logFile, "log-file", "", "log file path, stderr when empty")
	c.PersistentFlags().StringVar(&o.trace, "trace", "", "write OpenTelemetry spans to this file")
}

// loadConfig resolves the configuration, applies flag overrides and
// initialises logging
func (o *options) loadConfig(ctx context.Context) (*procman.Config, error) {
	cfg := procman.DefaultConfig()
	if o.configURL != "" {
		var err error
		if cfg, err = procman.LoadConfig(ctx, o.configURL); err != nil {
			return nil, err
		}
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.trace != "" {
		cfg.Tracing.Enabled = true
		cfg.Tracing.Output = o.trace
	}
	if err := logutil.InitLogger(&cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewCmdProcman creates the root command
func NewCmdProcman() *cobra.Command {
	o := newOptions()
	cmd := &cobra.Command{
		Use:           "procman",
		Short:         "Priority scheduler and resource allocator simulator",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	o.addFlags(cmd)
	cmd.AddCommand(newCmdShell(o))
	cmd.AddCommand(newCmdRun(o))
	return cmd
}
