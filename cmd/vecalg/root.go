package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yurimorini/vectors"
	"github.com/yurimorini/vectors/calc"
	"github.com/yurimorini/vectors/internal/round"
)

type app struct {
	v      *viper.Viper
	cfg    Config
	logger *vectors.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		cfg:    DefaultConfig(),
		logger: vectors.NoopLogger(),
	}

	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "vecalg",
		Short: "Evaluate n-dimensional vector algebra",
		Long: `vecalg evaluates vector algebra on vectors given as comma-separated
coordinates (1,2,3). Results are rounded to the configured precision.

Place "--" before arguments that start with a minus sign.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := readConfig(a.v, cfgFile)
			if err != nil {
				return err
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = logger
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vecalg/config.yaml)")
	pf.Int("precision", vectors.DefaultPrecision, "fractional digits of printed results")
	pf.Float64("tolerance", vectors.DefaultTolerance, "absolute tolerance of comparisons")
	pf.Bool("degrees", false, "report angles in degrees")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")

	setDefaults(a.v)
	for key, flag := range map[string]string{
		"precision":  "precision",
		"tolerance":  "tolerance",
		"degrees":    "degrees",
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	rootCmd.AddCommand(
		a.demoCmd(),
		a.sumCmd(),
		a.diffCmd(),
		a.scaleCmd(),
		a.dotCmd(),
		a.magnitudeCmd(),
		a.normalizeCmd(),
		a.angleCmd(),
		a.crossCmd(),
		a.areaCmd(),
		a.projectCmd(),
		a.checkCmd(),
		a.distanceCmd(),
	)

	return rootCmd
}

// eval parses args, applies fn, logs the outcome and prints the result.
func (a *app) eval(cmd *cobra.Command, op string, args []string, fn func([]vectors.Vector) (string, error)) error {
	vs, err := parseVectors(args)

	var out string
	if err == nil {
		out, err = fn(vs)
	}

	a.logger.LogOperation(cmd.Context(), op, calc.MaxDimension(vs...), err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func (a *app) vector(v vectors.Vector) string {
	return v.Rounded(vectors.WithPrecision(a.cfg.Precision)).String()
}

func (a *app) scalar(x float64) string {
	return strconv.FormatFloat(round.Fixed(x, a.cfg.Precision), 'f', -1, 64)
}
