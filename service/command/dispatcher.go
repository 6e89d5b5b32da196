package command

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pingcap/errors"
	"github.com/viant/procman/model/process"
	"github.com/viant/procman/model/resource"
)

// ErrorToken is written to the transcript when a command fails
const ErrorToken = "error"

// Engine is the set of engine operations the shell drives
type Engine interface {
	Initialize(ctx context.Context) error
	Create(ctx context.Context, name string, priority int) error
	Destroy(ctx context.Context, name string) error
	Request(ctx context.Context, resourceName string, units int) error
	Release(ctx context.Context, resourceName string, units int) error
	Timeout(ctx context.Context) error
	Running() *process.Snapshot
	Inspect(ctx context.Context, name string) (*process.Snapshot, error)
	InspectResource(name string) (*resource.Snapshot, error)
	ListProcesses(ctx context.Context, states ...process.State) ([]*process.Snapshot, error)
	ReadyQueue() []string
	Resources() []*resource.Snapshot
}

// Result is the outcome of a single line
type Result struct {
	Command *Command
	// Token is the transcript token: the running process name, or "error"
	Token string
	// Output holds rendered snapshots for query commands
	Output string
	// NewLine is set when the token starts a new transcript line
	NewLine bool
	Err     error
	Quit    bool
}

// Dispatcher applies shell lines to an engine
type Dispatcher struct {
	engine   Engine
	renderer *Renderer
}

// Execute parses line and applies it. Blank lines yield nil.
func (d *Dispatcher) Execute(ctx context.Context, line string) *Result {
	cmd, err := Parse(line)
	if err != nil {
		return &Result{Token: ErrorToken, Err: err}
	}
	if cmd == nil {
		return nil
	}
	ret := &Result{Command: cmd}
	switch cmd.Kind {
	case KindQuit:
		ret.Quit = true
		return ret
	case KindInfo:
		p, err := d.engine.Inspect(ctx, cmd.Name)
		if err != nil {
			return d.failed(ret, err)
		}
		ret.Output = d.renderer.Process(p)
		return ret
	case KindResource:
		r, err := d.engine.InspectResource(cmd.Name)
		if err != nil {
			return d.failed(ret, err)
		}
		ret.Output = d.renderer.Resource(r)
		return ret
	case KindList:
		processes, err := d.engine.ListProcesses(ctx)
		if err != nil {
			return d.failed(ret, err)
		}
		ret.Output = d.renderer.Overview(processes, d.engine.ReadyQueue(), d.engine.Resources())
		return ret
	case KindInit:
		ret.NewLine = true
		err = d.engine.Initialize(ctx)
	case KindCreate:
		err = d.engine.Create(ctx, cmd.Name, cmd.Priority)
	case KindDestroy:
		err = d.engine.Destroy(ctx, cmd.Name)
	case KindRequest:
		err = d.engine.Request(ctx, cmd.Name, cmd.Units)
	case KindRelease:
		err = d.engine.Release(ctx, cmd.Name, cmd.Units)
	case KindTimeout:
		err = d.engine.Timeout(ctx)
	}
	if err != nil {
		return d.failed(ret, err)
	}
	ret.Token = ErrorToken
	if running := d.engine.Running(); running != nil {
		ret.Token = running.Name
	}
	return ret
}

func (d *Dispatcher) failed(ret *Result, err error) *Result {
	ret.Err = err
	if ret.Command == nil || ret.Command.Mutating() {
		ret.Token = ErrorToken
		return ret
	}
	ret.Output = err.Error()
	return ret
}

// Run executes every line from r and writes the transcript to w. Tokens are
// space separated; init starts a new line. Query output is written on its
// own lines.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	transcript := &Transcript{w: w}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		result := d.Execute(ctx, scanner.Text())
		if result == nil {
			continue
		}
		if err := transcript.Write(result); err != nil {
			return err
		}
		if result.Quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Trace(err)
	}
	return transcript.Close()
}

// Transcript writes results in the batch format
type Transcript struct {
	w       io.Writer
	lineLen int
}

// Write appends result to the transcript
func (t *Transcript) Write(result *Result) error {
	var b strings.Builder
	if result.Output != "" {
		if t.lineLen > 0 {
			b.WriteString("\n")
			t.lineLen = 0
		}
		b.WriteString(result.Output)
		b.WriteString("\n")
	}
	if result.Token != "" {
		switch {
		case result.NewLine && t.lineLen > 0:
			b.WriteString("\n")
			t.lineLen = 0
		case t.lineLen > 0:
			b.WriteString(" ")
		}
		b.WriteString(result.Token)
		t.lineLen += len(result.Token)
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}

// Close terminates the last transcript line
func (t *Transcript) Close() error {
	if t.lineLen == 0 {
		return nil
	}
	t.lineLen = 0
	_, err := io.WriteString(t.w, "\n")
	return err
}

// New creates a dispatcher rendering to out
func New(engine Engine, out io.Writer) *Dispatcher {
	return &Dispatcher{engine: engine, renderer: NewRenderer(out)}
}
