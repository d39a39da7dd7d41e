package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/analysis"
)

// RenderTerminal writes the report to w as colored headings and ASCII tables.
func (r *Report) RenderTerminal(w io.Writer) {
	heading := color.New(color.FgCyan, color.Bold)
	subheading := color.New(color.FgYellow)
	warn := color.New(color.FgRed)

	heading.Fprintln(w, "Olympic Effect Analysis")
	fmt.Fprintf(w, "Report %s, generated %s\n", r.ID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if r.Window != nil {
		fmt.Fprintf(w, "Window: relative years %+d to %+d\n", r.Window.From, r.Window.To)
	}
	fmt.Fprintln(w)

	if r.Matrices != nil {
		for _, e := range r.Matrices.Entries {
			subheading.Fprintf(w, "%s / %s\n", e.Country, e.Group)
			RenderMatrix(w, e.Matrix)
			fmt.Fprintln(w)
		}
		for _, s := range r.Matrices.Skipped {
			warn.Fprintf(w, "⚠ skipped %s / %s: %s\n", s.Country, s.Group, s.Reason)
		}
		if len(r.Matrices.Skipped) > 0 {
			fmt.Fprintln(w)
		}
	}

	if len(r.Highlights) > 0 {
		heading.Fprintln(w, "Key Correlations")
		for _, ch := range r.Highlights {
			subheading.Fprintln(w, ch.Country)
			for _, h := range ch.Items {
				fmt.Fprintf(w, "  %s: strongest %s ~ %s (r = %s), weakest %s ~ %s (r = %s)\n",
					h.Group,
					h.Strongest.A, h.Strongest.B, fmtCoef(h.Strongest.R),
					h.Weakest.A, h.Weakest.B, fmtCoef(h.Weakest.R))
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Combos) > 0 {
		heading.Fprintln(w, "Combinations")
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Key", "Description", "Country", "r"})
		for _, c := range r.Combos {
			table.Append([]string{c.Key, c.Description, c.Country, fmtCoef(c.R)})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	for _, n := range r.Notes {
		warn.Fprintf(w, "⚠ %s\n", n)
	}
}

// RenderMatrix writes one correlation matrix as an ASCII table with the row
// metric in the first cell.
func RenderMatrix(w io.Writer, m *analysis.Matrix) {
	if m == nil || len(m.Columns) == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"metric"}, m.Columns...))
	for i, row := range m.Values {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, m.Columns[i])
		for _, v := range row {
			cells = append(cells, fmtCoef(v))
		}
		table.Append(cells)
	}
	table.Render()
}
