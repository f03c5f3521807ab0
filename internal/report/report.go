// Package report renders the outcome of a counter run for the terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/KiaFarhang/guarded-counter/internal/workers"
)

var bold = color.New(color.Bold)
var underline = color.New(color.Underline)

// Write prints a per-worker table for res followed by the final value.
func Write(w io.Writer, res *workers.Result) error {
	t := table.NewWriter()
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Options.SeparateHeader = false
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	var columns []table.ColumnConfig
	var headers table.Row
	for i, name := range []string{"Worker", "Increments", "First", "Last"} {
		headers = append(headers, underline.Sprint(name))
		align := text.AlignRight
		if i == 0 {
			align = text.AlignLeft
		}
		columns = append(columns, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: align,
			AlignFooter: align,
		})
	}

	t.SetColumnConfigs(columns)
	t.AppendHeader(headers)
	for _, stats := range res.Workers {
		t.AppendRow(table.Row{fmt.Sprintf("#%d", stats.ID), stats.Increments, stats.First, stats.Last})
	}
	t.AppendFooter(table.Row{"Total", res.Increments(), "", ""})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nInitial value: %d\nFinal value: %s\nElapsed: %s\n",
		res.Initial, bold.Sprint(res.Final), res.Elapsed.Round(time.Microsecond))
	return err
}
