package sink

import (
	"context"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mslovenc/DizajnRadar/internal/competition"
)

// Preview is the dry-run sink: instead of writing anywhere it renders the
// batch as a table. Used when no store credential is configured.
type Preview struct {
	Out io.Writer
}

func NewPreview(out io.Writer) *Preview {
	return &Preview{Out: out}
}

func (p *Preview) Replace(_ context.Context, records []competition.Record) error {
	t := table.NewWriter()
	t.SetOutputMirror(p.Out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Title", "Status", "Deadline", "Link"})

	for _, r := range records {
		deadline := r.Deadline
		if deadline == "" {
			deadline = "—"
		}
		t.AppendRow(table.Row{
			clip(r.Title, 45),
			r.Status,
			deadline,
			clip(r.Link, 40),
		})
	}
	t.Render()
	return nil
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
