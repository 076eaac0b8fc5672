package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/boxy/pkg/config"
	"github.com/chazu/boxy/pkg/geom"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	// cfg is loaded once per invocation before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "boxy",
	Short: "Pivoted boxes, anchors and architectural placeholders",
	Long: `boxy resolves oriented boxes by their 27 anchors, turns placeholder
boxes into doors, windows and staircases, and exports the result as STL.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		if configPath == "" {
			cfg = config.Default()
			return nil
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		slog.Debug("loaded config", "path", configPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseVec reads "x,y,z".
func parseVec(s string) (geom.Point3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Point3{}, errors.Errorf("expected x,y,z, got %q", s)
	}
	var v geom.Point3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Point3{}, errors.Wrapf(err, "component %d of %q", i, s)
		}
		v = v.WithComponent(geom.Axis(i), f)
	}
	return v, nil
}
