package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/analysis"
	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/report"
	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/utils"
)

var (
	analyzeOutput string
	analyzeJSON   bool
	analyzeFrom   int
	analyzeTo     int
	analyzeTables bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full correlation analysis and render a report",
	Long: `Loads every configured indicator file, aligns the series on the
host-year-relative axis, merges them into one wide table, and computes the
per-country, per-group Pearson correlation matrices along with the
predefined metric combinations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := requireConfig()

		window := c.Window
		f := cmd.Flags()
		if f.Changed("from") {
			window.From = analyzeFrom
		}
		if f.Changed("to") {
			window.To = analyzeTo
		}
		if window.From > window.To {
			return fmt.Errorf("window from %d exceeds to %d", window.From, window.To)
		}

		merged, notes, err := buildMergedTable(c)
		if err != nil {
			return err
		}

		set, err := analysis.CountryMatrices(merged, c.MetricGroups, c.Countries, &window)
		if err != nil {
			return err
		}

		rep := report.New()
		rep.Window = &window
		rep.Matrices = set
		for _, country := range c.Countries {
			rep.Highlights = append(rep.Highlights, report.CountryHighlights{
				Country: country.Tag,
				Items:   analysis.Highlights(set, country.Tag),
			})
		}
		combos, comboNotes := analysis.AllCombinations(merged, c.Combinations, c.Countries)
		report.SortCombos(combos)
		rep.Combos = combos
		rep.Notes = append(notes, comboNotes...)

		if analyzeTables {
			rep.RenderTerminal(cmd.OutOrStdout())
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), rep.Markdown())
		}

		if analyzeJSON {
			b, err := utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
			if err := utils.EnsureDir(c.ReportsDir); err != nil {
				return fmt.Errorf("ensure reports dir: %w", err)
			}
			path := utils.TimestampedPath(c.ReportsDir, "analysis", ".json")
			if err := utils.SafeWriteFile(path, b); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "✓ JSON report written to %s\n", path)
		}
		if analyzeOutput != "" {
			if dir := filepath.Dir(analyzeOutput); dir != "." {
				if err := utils.EnsureDir(dir); err != nil {
					return fmt.Errorf("ensure output dir: %w", err)
				}
			}
			if err := utils.SafeWriteFile(analyzeOutput, []byte(rep.Markdown())); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "✓ Report written to %s\n", analyzeOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write the Markdown report to this path")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "also write a timestamped JSON report under reports_dir")
	analyzeCmd.Flags().IntVar(&analyzeFrom, "from", 0, "override window start (relative year, inclusive)")
	analyzeCmd.Flags().IntVar(&analyzeTo, "to", 0, "override window end (relative year, inclusive)")
	analyzeCmd.Flags().BoolVar(&analyzeTables, "tables", false, "render colored terminal tables instead of Markdown")
}
