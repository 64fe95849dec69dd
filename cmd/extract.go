package cmd

import (
	"github.com/mmuldo/colorthesaurus/image"
	"github.com/mmuldo/colorthesaurus/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Names the dominant colors of an image",
	Long: `Quantizes an image to a small number of colors, ranks them by how many
pixels they cover and names each one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := image.Load(args[0])
		if err != nil {
			return err
		}

		m, err := newMatcher()
		if err != nil {
			return err
		}

		num, step := viper.GetInt("colors"), viper.GetInt("step")
		cc := image.Dominant(i, num, step)
		logger.Debug("quantized image", "file", args[0], "colors", len(cc))

		colors := make([]map[string]interface{}, 0, len(cc))
		for _, c := range cc {
			match, err := m.ClosestMatch(c.Color)
			if err != nil {
				return err
			}
			row := report.Color(c.Color)
			row["name"] = match.Color.Name
			row["distance"] = match.Distance
			row["count"] = c.Count
			colors = append(colors, row)
		}

		tpl, err := report.Template(viper.GetString("template"), report.ExtractTemplate)
		if err != nil {
			return err
		}
		return report.Render(cmd.OutOrStdout(), tpl, report.Data{"colors": colors})
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntP("colors", "c", 8, "number of colors to quantize to")
	extractCmd.Flags().Int("step", 5, "sample every n'th pixel")
	viper.BindPFlag("colors", extractCmd.Flags().Lookup("colors"))
	viper.BindPFlag("step", extractCmd.Flags().Lookup("step"))
}
