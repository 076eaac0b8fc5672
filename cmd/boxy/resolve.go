package main

import (
	"fmt"

	"github.com/chazu/boxy/pkg/geom"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	resolveBox     boxFlags
	resolveTo      string
	resolveAxis    string
	resolveDegrees float64
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a pivoted box to its center and world bounds",
	Long: `Resolve a box given by size, pivot position, rotation and pivot anchor.
The box can be moved to a new pivot anchor (--to) or turned a quarter turn
about a local axis (--reorient) without moving in space.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	resolveBox.register(resolveCmd)
	resolveCmd.Flags().StringVar(&resolveTo, "to", "", "re-express the box with this pivot anchor")
	resolveCmd.Flags().StringVar(&resolveAxis, "reorient", "", "local axis to swap the other two about (x, y or z)")
	resolveCmd.Flags().Float64Var(&resolveDegrees, "degrees", 90, "reorient angle, a multiple of 90")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	bd, err := resolveBox.boxData()
	if err != nil {
		return err
	}

	if resolveAxis != "" {
		axis, err := geom.ParseAxis(resolveAxis)
		if err != nil {
			return errors.Wrap(err, "--reorient")
		}
		if bd, err = bd.Reorient(axis, resolveDegrees); err != nil {
			return err
		}
	}
	if resolveTo != "" {
		to, err := parseAnchor(resolveTo)
		if err != nil {
			return errors.Wrap(err, "--to")
		}
		if bd, err = bd.Repivot(to); err != nil {
			return err
		}
	}

	aabb := bd.Bounds().AxisAligned()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pivot:       %s\n", bd.PivotAnchor)
	fmt.Fprintf(out, "size:        %s\n", bd.Size)
	fmt.Fprintf(out, "translation: %s\n", bd.Translation)
	fmt.Fprintf(out, "rotation:    %s\n", bd.Rotation)
	fmt.Fprintf(out, "center:      %s\n", bd.Center())
	fmt.Fprintf(out, "aabb:        %s .. %s\n", aabb.Min(), aabb.Max())
	return nil
}
