package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chazu/boxy/internal/app"
	"github.com/chazu/boxy/pkg/arch"
	"github.com/chazu/boxy/pkg/box"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var evalYAML bool

var evalCmd = &cobra.Command{
	Use:   "eval <file.boxy>",
	Short: "Evaluate a boxy source file and list its items",
	Long: `Evaluate a boxy source file, validate the resulting scene and list each
item with its kind and placeholder box. With --yaml the generated
assemblies are written as a YAML document instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&evalYAML, "yaml", false, "dump generated assemblies as YAML")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	res, err := evaluateFile(args[0])
	if err != nil {
		return err
	}
	if err := reportResult(cmd.ErrOrStderr(), res); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if evalYAML {
		return dumpYAML(out, res)
	}
	for _, n := range res.Scene.Items() {
		if n.Assembly == nil {
			fmt.Fprintf(out, "%-16s %-9s (no geometry)\n", n.Label(), n.Kind())
			continue
		}
		bd := n.Assembly.Box()
		fmt.Fprintf(out, "%-16s %-9s parts=%-2d center=%s size=%s\n",
			n.Label(), n.Kind(), len(n.Assembly.Parts), bd.Center(), bd.Size)
	}
	return nil
}

func evaluateFile(path string) (*app.Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read source")
	}
	return app.New(cfg, slog.Default()).Evaluate(string(src))
}

// reportResult prints evaluation errors and warnings, returning an error
// when the run failed.
func reportResult(w io.Writer, res *app.Result) error {
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn.Message)
	}
	if res.OK() {
		return nil
	}
	for _, e := range res.Errors {
		if e.Line > 0 {
			fmt.Fprintf(w, "line %d: %s\n", e.Line, e.Message)
		} else {
			fmt.Fprintln(w, e.Message)
		}
	}
	return errors.Errorf("%d error(s)", len(res.Errors))
}

// itemDoc is the YAML shape of one item.
type itemDoc struct {
	Name     string          `yaml:"name"`
	ID       string          `yaml:"id"`
	Kind     arch.Kind       `yaml:"kind"`
	Box      box.BoxData     `yaml:"box"`
	Assembly *arch.Assembly  `yaml:"assembly,omitempty"`
	Mirror   *box.MirrorPlan `yaml:"mirror,omitempty"`
}

func dumpYAML(w io.Writer, res *app.Result) error {
	docs := make([]itemDoc, 0, res.Scene.NodeCount())
	for _, n := range res.Scene.Items() {
		d := itemDoc{
			Name:     n.Name,
			ID:       string(n.ID),
			Kind:     n.Kind(),
			Assembly: n.Assembly,
			Mirror:   n.Mirror,
		}
		if n.Representation != nil {
			if bd, err := n.Representation.BoxData(); err == nil {
				d.Box = bd
			}
		}
		docs = append(docs, d)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"items": docs}); err != nil {
		return errors.Wrap(err, "failed to encode scene")
	}
	return enc.Close()
}
