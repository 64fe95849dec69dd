package cmd

import (
	"github.com/mmuldo/colorthesaurus/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Shows a color in XYZ, CIELAB and HSL",
	Args:  cobra.RangeArgs(1, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColor(args)
		if err != nil {
			return err
		}

		m, err := newMatcher()
		if err != nil {
			return err
		}
		name, err := m.Name(c)
		if err != nil {
			return err
		}

		tpl, err := report.Template(viper.GetString("template"), report.ConvertTemplate)
		if err != nil {
			return err
		}
		d := report.Conversion(c)
		d["name"] = name
		return report.Render(cmd.OutOrStdout(), tpl, d)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
