package main

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/procman"
	"github.com/viant/procman/service/command"
	"github.com/viant/procman/service/meta"
	"github.com/viant/procman/tracing"
)

type runOptions struct {
	*options
	input  string
	output string
}

func newCmdRun(o *options) *cobra.Command {
	ro := &runOptions{options: o}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a command script and write the transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ro.run(cmd)
		},
	}
	cmd.Flags().StringVarP(&ro.input, "input", "i", "", "script URL (any afs scheme)")
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "transcript URL, stdout when empty")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func (o *runOptions) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := o.loadConfig(ctx)
	if err != nil {
		return err
	}
	srv, err := procman.New(procman.WithConfig(cfg))
	if err != nil {
		return err
	}
	defer srv.Close()
	defer func() { _ = tracing.Shutdown(ctx) }()

	fs := meta.New(afs.New(), "")
	script, err := fs.Download(ctx, o.input)
	if err != nil {
		return err
	}
	transcript := &bytes.Buffer{}
	if err = command.New(srv, transcript).Run(ctx, bytes.NewReader(script), transcript); err != nil {
		return err
	}
	if o.output == "" {
		_, err = cmd.OutOrStdout().Write(transcript.Bytes())
		return err
	}
	return fs.Upload(ctx, o.output, transcript.Bytes())
}
