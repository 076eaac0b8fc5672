package main

import (
	"fmt"

	"github.com/chazu/boxy/pkg/box"
	"github.com/chazu/boxy/pkg/geom"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// boxFlags are the placement flags shared by anchors and resolve.
type boxFlags struct {
	size, at, rotate, pivot string
}

func (f *boxFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.size, "size", "1,1,1", "box size x,y,z")
	cmd.Flags().StringVar(&f.at, "at", "0,0,0", "pivot position x,y,z")
	cmd.Flags().StringVar(&f.rotate, "rotate", "0,0,0", "Euler XYZ rotation in degrees")
	cmd.Flags().StringVar(&f.pivot, "pivot", "", "pivot anchor (c, f0..f5, e0..e11, v0..v7, or a side name)")
}

func (f *boxFlags) boxData() (box.BoxData, error) {
	size, err := parseVec(f.size)
	if err != nil {
		return box.BoxData{}, errors.Wrap(err, "--size")
	}
	at, err := parseVec(f.at)
	if err != nil {
		return box.BoxData{}, errors.Wrap(err, "--at")
	}
	rot, err := parseVec(f.rotate)
	if err != nil {
		return box.BoxData{}, errors.Wrap(err, "--rotate")
	}
	pivot, err := cfg.Pivot()
	if err != nil {
		return box.BoxData{}, err
	}
	if f.pivot != "" {
		if pivot, err = parseAnchor(f.pivot); err != nil {
			return box.BoxData{}, errors.Wrap(err, "--pivot")
		}
	}
	return box.NewBoxData(size, at, rot, pivot)
}

// parseAnchor resolves a pivot name, rejecting edges and corners unless
// advanced pivots are enabled.
func parseAnchor(name string) (box.Anchor, error) {
	a, err := box.ParseAnchor(name)
	if err != nil {
		return 0, err
	}
	if !cfg.AdvancedPivots && !a.IsBasic() {
		return 0, &geom.InvalidAnchorError{Value: name, Reason: "advanced pivots are disabled"}
	}
	return a, nil
}

var (
	anchorsBox boxFlags
	anchorsAll bool
)

var anchorsCmd = &cobra.Command{
	Use:   "anchors",
	Short: "List the world positions of a box's anchors",
	Long: `Print every anchor of a placed box with its kind, stored pivot index and
world position. Only the seven basic anchors are listed unless --all is given.`,
	Args: cobra.NoArgs,
	RunE: runAnchors,
}

func init() {
	anchorsBox.register(anchorsCmd)
	anchorsCmd.Flags().BoolVar(&anchorsAll, "all", false, "list all 27 anchors")
	rootCmd.AddCommand(anchorsCmd)
}

func runAnchors(cmd *cobra.Command, args []string) error {
	bd, err := anchorsBox.boxData()
	if err != nil {
		return err
	}

	anchors := box.BasicAnchors()
	if anchorsAll {
		anchors = box.Anchors()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-6s %-7s %-5s %s\n", "ANCHOR", "KIND", "INDEX", "POSITION")
	for _, a := range anchors {
		idx, err := a.Index()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-6s %-7s %-5d %s\n", a, a.Kind(), idx, bd.AnchorPosition(a))
	}
	return nil
}
