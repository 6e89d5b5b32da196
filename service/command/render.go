package command

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/viant/procman/model/process"
	"github.com/viant/procman/model/resource"
)

// Renderer formats snapshots for display
type Renderer struct {
	title   lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
	running lipgloss.Style
	ready   lipgloss.Style
	blocked lipgloss.Style
}

// NewRenderer creates a renderer that detects color support from w
func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		label:   r.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1),
		running: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7BD88F")),
		ready:   r.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
		blocked: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
	}
}

func (r *Renderer) state(state process.State) string {
	switch state {
	case process.StateRunning:
		return r.running.Render(state.String())
	case process.StateBlocked:
		return r.blocked.Render(state.String())
	default:
		return r.ready.Render(state.String())
	}
}

func (r *Renderer) field(name string, value interface{}) string {
	return r.label.Render(fmt.Sprintf("%-10s", name)) + fmt.Sprint(value)
}

// Process renders a single process
func (r *Renderer) Process(p *process.Snapshot) string {
	parent := p.Parent
	if parent == "" {
		parent = r.muted.Render("-")
	}
	lines := []string{
		r.title.Render(p.Name),
		r.field("priority", p.Priority),
		r.field("state", r.state(p.State)),
		r.field("parent", parent),
		r.field("children", joinOrDash(p.Children)),
		r.field("held", formatUnits(p.Held)),
	}
	if p.BlockedOn != nil {
		lines = append(lines, r.field("waiting", fmt.Sprintf("%s:%d", p.BlockedOn.Resource, p.BlockedOn.Units)))
	}
	return r.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Resource renders a single resource ledger
func (r *Renderer) Resource(s *resource.Snapshot) string {
	waiting := make([]string, 0, len(s.WaitOrder))
	for _, name := range s.WaitOrder {
		waiting = append(waiting, fmt.Sprintf("%s:%d", name, s.Blocked[name]))
	}
	lines := []string{
		r.title.Render(s.ID),
		r.field("units", fmt.Sprintf("%d/%d available", s.Available, s.Total)),
		r.field("attached", formatUnits(s.Attached)),
		r.field("waiting", joinOrDash(waiting)),
	}
	return r.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Overview renders the process table, the ready queue and every resource
func (r *Renderer) Overview(processes []*process.Snapshot, ready []string, resources []*resource.Snapshot) string {
	rows := []string{r.title.Render("processes")}
	for _, p := range processes {
		rows = append(rows, fmt.Sprintf("%-12s %3d  %s", p.Name, p.Priority, r.state(p.State)))
	}
	rows = append(rows, "", r.field("ready", joinOrDash(ready)))
	left := r.box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	resourceRows := []string{r.title.Render("resources")}
	for _, s := range resources {
		resourceRows = append(resourceRows, fmt.Sprintf("%-6s %d/%d  %s", s.ID, s.Available, s.Total, formatUnits(s.Attached)))
	}
	right := r.box.Render(lipgloss.JoinVertical(lipgloss.Left, resourceRows...))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func formatUnits(units map[string]int) string {
	if len(units) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(units))
	for k := range units {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, units[k]))
	}
	return strings.Join(parts, " ")
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, " ")
}
