package cmd

import (
	"github.com/mmuldo/colorthesaurus/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the palette colors in match order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPalette()
		if err != nil {
			return err
		}

		colors := make([]map[string]interface{}, p.Len())
		for i := range colors {
			colors[i] = report.Color(p.At(i))
		}

		tpl, err := report.Template(viper.GetString("template"), report.ListTemplate)
		if err != nil {
			return err
		}
		return report.Render(cmd.OutOrStdout(), tpl, report.Data{"colors": colors})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
