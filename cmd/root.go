/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/colorthesaurus/colorspace"
	"github.com/mmuldo/colorthesaurus/palette"
	"github.com/mmuldo/colorthesaurus/thesaurus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logger  = hclog.NewNullLogger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorthesaurus",
	Short: "Names colors by their closest perceptual match",
	Long: `colorthesaurus converts sRGB colors to XYZ and CIELAB and names them
after the perceptually closest entry of a named color palette.

Colors are given as hex (#rgb, #rrggbb, #aarrggbb) or as three or four
normalized channels (r g b [a]).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.colorthesaurus.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("palette", "p", "", "palette file (default is the built-in named colors)")
	rootCmd.PersistentFlags().StringP("metric", "m", "cie94", "color difference formula (cie94, cie2000)")
	rootCmd.PersistentFlags().String("template", "", "pongo2 template used to render output")

	viper.BindPFlag("palette", rootCmd.PersistentFlags().Lookup("palette"))
	viper.BindPFlag("metric", rootCmd.PersistentFlags().Lookup("metric"))
	viper.BindPFlag("template", rootCmd.PersistentFlags().Lookup("template"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	logger = hclog.New(&hclog.LoggerOptions{
		Name:   "colorthesaurus",
		Output: os.Stderr,
		Level:  level,
	})

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			logger.Warn("cannot locate home directory", "error", err)
		} else {
			viper.AddConfigPath(home)
			viper.SetConfigName(".colorthesaurus")
		}
	}

	viper.SetEnvPrefix("colorthesaurus")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "file", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Error("reading config file", "file", cfgFile, "error", err)
	}
}

// newMatcher builds a matcher from the configured palette and metric.
func newMatcher() (*thesaurus.Matcher, error) {
	metric, err := thesaurus.ParseMetric(viper.GetString("metric"))
	if err != nil {
		return nil, err
	}

	p, err := loadPalette()
	if err != nil {
		return nil, err
	}

	return thesaurus.New(p,
		thesaurus.WithMetric(metric),
		thesaurus.WithLogger(logger.Named("thesaurus")),
	), nil
}

func loadPalette() (*palette.Palette, error) {
	path := viper.GetString("palette")
	if path == "" {
		return palette.Default(), nil
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	p, err := palette.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded palette", "file", path, "colors", p.Len())
	return p, nil
}

// parseColor reads a color from a single hex argument or from three or four
// channel values. Out of range channels are clamped.
func parseColor(args []string) (colorspace.RGBA, error) {
	var c colorspace.RGBA

	switch len(args) {
	case 1:
		h, err := colorspace.ParseHex(args[0])
		if err != nil {
			return c, err
		}
		c = h
	case 3, 4:
		v := [4]float64{1, 1, 1, 1}
		for i, a := range args {
			f, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return c, fmt.Errorf("channel %d: %w", i, err)
			}
			v[i] = f
		}
		c = colorspace.New(v[0], v[1], v[2], v[3])
	default:
		return c, fmt.Errorf("expected a hex color or 3-4 channels, got %d arguments", len(args))
	}

	if !c.InRange() {
		logger.Warn("channel out of range, clamping to [0, 1]", "color", c)
		c = c.Clamp()
	}
	return c, nil
}
