package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/analysis"
)

var (
	comboCountry     string
	comboInteractive bool
)

var comboCmd = &cobra.Command{
	Use:   "combo [key]",
	Short: "Correlate one predefined metric pair for one country",
	Long: `Computes the Pearson correlation for one of the predefined metric
combinations. With no arguments, lists the available combinations.
With --interactive, prompts for the combination key and country tag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := requireConfig()
		out := cmd.OutOrStdout()

		key := ""
		if len(args) == 1 {
			key = args[0]
		}
		countryTag := comboCountry

		if comboInteractive {
			in := bufio.NewReader(cmd.InOrStdin())
			listCombos(cmd)
			fmt.Fprint(out, "Combination key: ")
			line, err := in.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read combination key: %w", err)
			}
			key = strings.TrimSpace(line)
			fmt.Fprint(out, "Country tag: ")
			line, err = in.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read country tag: %w", err)
			}
			countryTag = strings.TrimSpace(line)
		}

		if key == "" {
			listCombos(cmd)
			return nil
		}

		// Selection errors should surface before any dataset is touched.
		combo, err := analysis.SelectCombination(c.Combinations, key)
		if err != nil {
			return err
		}
		country, err := analysis.ResolveCountry(c.Countries, countryTag)
		if err != nil {
			return err
		}

		merged, notes, err := buildMergedTable(c)
		if err != nil {
			return err
		}
		for _, n := range notes {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ %s\n", n)
		}

		res, err := analysis.AnalyzeCombination(merged, combo, country)
		if err != nil {
			return err
		}
		color.New(color.FgCyan, color.Bold).Fprintf(out, "[%s] %s\n", res.Key, res.Description)
		fmt.Fprintf(out, "%s: %s ~ %s, r = %.3f\n", country.Name, res.MetricA, res.MetricB, res.R)
		return nil
	},
}

func listCombos(cmd *cobra.Command) {
	c := requireConfig()
	out := cmd.OutOrStdout()
	color.New(color.FgCyan, color.Bold).Fprintln(out, "Available combinations")
	for _, combo := range c.Combinations {
		fmt.Fprintf(out, "  [%s] %s (%s ~ %s)\n", combo.Key, combo.Description, combo.Metrics[0], combo.Metrics[1])
	}
}

func init() {
	rootCmd.AddCommand(comboCmd)
	comboCmd.Flags().StringVarP(&comboCountry, "country", "c", "", "country tag to analyze (e.g. AUS)")
	comboCmd.Flags().BoolVarP(&comboInteractive, "interactive", "i", false, "prompt for combination key and country")
}
