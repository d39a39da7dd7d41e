// Package report assembles analysis results into Markdown and terminal
// renderings.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/analysis"
	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/config"
)

// CountryHighlights is one country's extremal correlations, group by group.
type CountryHighlights struct {
	Country string // country tag
	Items   []analysis.Highlight
}

// Report is a complete analysis run ready for rendering.
type Report struct {
	ID          string                 `json:"id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Window      *config.Window         `json:"window,omitempty"`
	Matrices    *analysis.MatrixSet    `json:"matrices"`
	Highlights  []CountryHighlights    `json:"highlights"`
	Combos      []analysis.ComboResult `json:"combinations"`
	Notes       []string               `json:"notes,omitempty"`
}

// New creates an empty report with a fresh ID.
func New() *Report {
	return &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}
}

// fmtCoef renders a coefficient, with undefined cells shown as "n/a".
func fmtCoef(r float64) string {
	if math.IsNaN(r) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", r)
}

// Markdown renders the report as a single Markdown document.
func (r *Report) Markdown() string {
	var sb strings.Builder

	sb.WriteString("[OLYMPIC EFFECT ANALYSIS]\n")
	sb.WriteString("Report ID: " + r.ID + "\n")
	sb.WriteString("Generated: " + r.GeneratedAt.Format(time.RFC3339) + "\n")
	if r.Window != nil {
		sb.WriteString(fmt.Sprintf("Window: relative years %+d to %+d\n", r.Window.From, r.Window.To))
	}
	sb.WriteString("\n")

	sb.WriteString("[CORRELATION MATRICES]\n")
	if r.Matrices == nil || len(r.Matrices.Entries) == 0 {
		sb.WriteString("(none)\n\n")
	} else {
		for _, e := range r.Matrices.Entries {
			sb.WriteString(fmt.Sprintf("--- %s / %s ---\n", e.Country, e.Group))
			writeMatrixMarkdown(&sb, e.Matrix)
			sb.WriteString("\n")
		}
	}
	if r.Matrices != nil && len(r.Matrices.Skipped) > 0 {
		sb.WriteString("Skipped:\n")
		for _, s := range r.Matrices.Skipped {
			sb.WriteString(fmt.Sprintf("- %s / %s: %s\n", s.Country, s.Group, s.Reason))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("[KEY CORRELATIONS]\n")
	if len(r.Highlights) == 0 {
		sb.WriteString("(none)\n\n")
	} else {
		for _, ch := range r.Highlights {
			sb.WriteString("--- " + ch.Country + " ---\n")
			for _, h := range ch.Items {
				sb.WriteString(fmt.Sprintf("- %s: strongest %s ~ %s (r = %s), weakest %s ~ %s (r = %s)\n",
					h.Group,
					h.Strongest.A, h.Strongest.B, fmtCoef(h.Strongest.R),
					h.Weakest.A, h.Weakest.B, fmtCoef(h.Weakest.R)))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("[COMBINATIONS]\n")
	if len(r.Combos) == 0 {
		sb.WriteString("(none)\n")
	} else {
		for _, c := range r.Combos {
			sb.WriteString(fmt.Sprintf("- [%s] %s (%s): %s ~ %s, r = %s\n",
				c.Key, c.Description, c.Country, c.MetricA, c.MetricB, fmtCoef(c.R)))
		}
	}
	sb.WriteString("\n")

	if len(r.Notes) > 0 {
		sb.WriteString("[NOTES]\n")
		for _, n := range r.Notes {
			sb.WriteString("- " + n + "\n")
		}
	}

	return sb.String()
}

// writeMatrixMarkdown renders one matrix as a Markdown table with row labels.
func writeMatrixMarkdown(sb *strings.Builder, m *analysis.Matrix) {
	if m == nil || len(m.Columns) == 0 {
		sb.WriteString("(empty)\n")
		return
	}
	sb.WriteString("| |")
	for _, c := range m.Columns {
		sb.WriteString(" " + c + " |")
	}
	sb.WriteString("\n|---|")
	for range m.Columns {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
	for i, row := range m.Values {
		sb.WriteString("| " + m.Columns[i] + " |")
		for _, v := range row {
			sb.WriteString(" " + fmtCoef(v) + " |")
		}
		sb.WriteString("\n")
	}
}

// SortCombos orders combination results by key then country tag so renderings
// are stable across runs.
func SortCombos(combos []analysis.ComboResult) {
	sort.SliceStable(combos, func(i, j int) bool {
		if combos[i].Key != combos[j].Key {
			return combos[i].Key < combos[j].Key
		}
		return combos[i].Country < combos[j].Country
	})
}
