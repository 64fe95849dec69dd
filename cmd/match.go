package cmd

import (
	"github.com/mmuldo/colorthesaurus/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <color>",
	Short: "Finds the closest named color",
	Long: `Finds the palette entry closest to a color. Exact channel matches are
reported as (exact); otherwise the ΔE of the chosen metric is shown.`,
	Example: `  colorthesaurus match "#ff0000"
  colorthesaurus match 0.5 0.5 0.5 --top 3`,
	Args: cobra.RangeArgs(1, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColor(args)
		if err != nil {
			return err
		}

		m, err := newMatcher()
		if err != nil {
			return err
		}

		ms, err := m.Rank(c, viper.GetInt("top"))
		if err != nil {
			return err
		}

		tpl, err := report.Template(viper.GetString("template"), report.MatchTemplate)
		if err != nil {
			return err
		}
		return report.Render(cmd.OutOrStdout(), tpl, report.Data{
			"query":   c.Hex(),
			"color":   report.Color(c),
			"matches": report.Matches(ms),
		})
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().IntP("top", "n", 1, "number of matches to show")
	viper.BindPFlag("top", matchCmd.Flags().Lookup("top"))
}
