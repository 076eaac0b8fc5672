package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chazu/boxy/internal/app"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	exportDir  string
	exportJSON string
)

var exportCmd = &cobra.Command{
	Use:   "export <file.boxy>",
	Short: "Mesh a boxy source file to STL or JSON",
	Long: `Evaluate a boxy source file and write one STL file per item into the
output directory. With --json the triangle meshes of all items are written
to a single JSON file instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "out", "directory for STL files")
	exportCmd.Flags().StringVar(&exportJSON, "json", "", "write meshes to this JSON file instead of STL")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "failed to read source")
	}
	a := app.New(cfg, slog.Default())

	if exportJSON != "" {
		res, err := a.Build(string(src))
		if err != nil {
			return err
		}
		if err := reportResult(cmd.ErrOrStderr(), res); err != nil {
			return err
		}
		f, err := os.Create(exportJSON)
		if err != nil {
			return errors.Wrap(err, "failed to create output")
		}
		defer f.Close()
		if err := res.WriteJSON(f); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d meshes to %s\n", len(res.Meshes), exportJSON)
		return nil
	}

	res, paths, err := a.ExportSTL(string(src), exportDir)
	if err != nil {
		return err
	}
	if err := reportResult(cmd.ErrOrStderr(), res); err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
