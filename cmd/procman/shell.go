package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/viant/procman"
	"github.com/viant/procman/service/command"
	"github.com/viant/procman/service/event"
	"github.com/viant/procman/tracing"
)

type shellOptions struct {
	*options
	verbose bool
	history string
}

func newCmdShell(o *options) *cobra.Command {
	so := &shellOptions{options: o}
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return so.run(cmd)
		},
	}
	cmd.Flags().BoolVarP(&so.verbose, "verbose", "v", false, "print every engine transition")
	cmd.Flags().StringVar(&so.history, "history", filepath.Join(os.TempDir(), "procman.history"), "readline history file")
	return cmd
}

func (o *shellOptions) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := o.loadConfig(ctx)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Events.Enabled = true
	}
	options := []procman.Option{procman.WithConfig(cfg)}
	if o.verbose {
		options = append(options, procman.WithTransitionListener(func(e *event.Event[event.Transition]) {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", e.Data.String())
		}))
	}
	srv, err := procman.New(options...)
	if err != nil {
		return err
	}
	defer srv.Close()
	defer func() { _ = tracing.Shutdown(ctx) }()

	out := cmd.OutOrStdout()

	l, err := readline.NewEx(&readline.Config{
		Prompt:            "procman> ",
		HistoryFile:       o.history,
		InterruptPrompt:   "^C",
		EOFPrompt:         "^D",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	dispatcher := command.New(srv, out)
	fmt.Fprintln(cmd.ErrOrStderr(), "procman shell, session", srv.SessionID())
	for {
		line, err := l.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				return nil
			}
			continue
		}
		result := dispatcher.Execute(ctx, line)
		if result == nil {
			continue
		}
		if result.Quit {
			return nil
		}
		if result.Output != "" {
			fmt.Fprintln(out, result.Output)
		}
		if result.Err != nil && result.Token != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), result.Err.Error())
		}
		if result.Token != "" {
			fmt.Fprintln(out, result.Token)
		}
	}
}
