package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/analysis"
	"github.com/Ray-Gizzy/2024Fall-projects-Olympic-Effect/internal/dataset"
)

var (
	growthMetric   string
	growthCountry  string
	growthHostYear int
	growthRenames  []string
)

var growthCmd = &cobra.Command{
	Use:   "growth <csv-file>",
	Short: "Show growth rates and relative years for one indicator file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := requireConfig()

		hostYear := growthHostYear
		if !cmd.Flags().Changed("host-year") {
			country, err := analysis.ResolveCountry(c.Countries, growthCountry)
			if err != nil {
				return fmt.Errorf("need --host-year or a configured --country: %w", err)
			}
			hostYear = country.HostYear
		}

		rename := make(map[string]string, len(growthRenames))
		for _, spec := range growthRenames {
			from, to, ok := strings.Cut(spec, "=")
			if !ok {
				return fmt.Errorf("invalid --rename %q, want old=new", spec)
			}
			rename[from] = to
		}

		df, err := dataset.LoadCSV(args[0])
		if err != nil {
			return err
		}
		norm, err := dataset.Normalize(df, dataset.NormalizeOptions{
			Rename:   rename,
			HostYear: hostYear,
			Metric:   growthMetric,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.FgCyan, color.Bold).Fprintf(out, "%s (host year %d)\n", growthMetric, hostYear)
		years := norm.Col(analysis.YearColumn).Float()
		values := norm.Col(growthMetric).Float()
		growth := norm.Col(analysis.GrowthRateColumn).Float()
		rel := norm.Col(analysis.RelativeYearColumn).Float()

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{analysis.YearColumn, growthMetric, analysis.GrowthRateColumn, analysis.RelativeYearColumn})
		for i := range years {
			table.Append([]string{
				strconv.Itoa(int(years[i])),
				fmt.Sprintf("%.4g", values[i]),
				fmt.Sprintf("%.2f", growth[i]),
				fmt.Sprintf("%+d", int(rel[i])),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(growthCmd)
	growthCmd.Flags().StringVarP(&growthMetric, "metric", "m", "", "metric column to compute growth rates on (required)")
	growthCmd.Flags().StringVarP(&growthCountry, "country", "c", "", "configured country tag supplying the host year")
	growthCmd.Flags().IntVar(&growthHostYear, "host-year", 0, "host year anchoring the relative axis (overrides --country)")
	growthCmd.Flags().StringArrayVar(&growthRenames, "rename", nil, "rename a raw header, old=new (repeatable)")
	_ = growthCmd.MarkFlagRequired("metric")
}
