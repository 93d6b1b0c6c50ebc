// Package cli implements zfake's command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zstyle"
	"golang.org/x/term"

	"github.com/zarlcorp/zfake/internal/render"
)

var pathStyle = lipgloss.NewStyle().Bold(true)

// NewRootCmd builds the zfake command tree. The root command generates a
// dataset; version and mask are subcommands.
func NewRootCmd(version string) *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "zfake",
		Short: "Generate disposable test data as JSON, CSV or XML",
		Long: "zfake generates fake personal and business records, masks the fields\n" +
			"named in the masking config, adds the custom fields named in the fields\n" +
			"config and writes test-data.<format> to the output directory.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, cfgPath)
		},
	}

	fl := root.Flags()
	fl.IntP("count", "c", 10, "number of records to generate")
	fl.StringP("format", "f", "json", "output format: json, csv, or xml")
	fl.String("fields", "custom-fields.json", "path to custom fields JSON")
	fl.String("mask", "masking-config.json", "path to masking config JSON")
	fl.StringP("out-dir", "o", ".", "directory the output file is written to")
	fl.Uint64("seed", 0, "seed for reproducible data (0 picks a random seed)")
	fl.String("log-level", "info", "log level: debug, info, warn, error")
	fl.String("metrics-file", "", "write run metrics in Prometheus text format to this file")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML settings file")

	root.AddCommand(newVersionCmd(version))
	root.AddCommand(newMaskCmd())
	return root
}

// Execute runs the command tree with os.Args and reports failures on stderr.
// It returns the process exit code.
func Execute(ctx context.Context, version string) int {
	root := NewRootCmd(version)
	if err := root.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		return 1
	}
	return 0
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the zfake version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zfake %s\n", version)
		},
	}
}

func printWritten(w io.Writer, f render.Format, path string) {
	if isTerminal(w) {
		fmt.Fprintf(w, "%s %s data generated: %s\n",
			zstyle.StatusOK.Render("✓"), f, pathStyle.Render(path))
		return
	}
	fmt.Fprintf(w, "%s data generated: %s\n", f, path)
}

func printError(w io.Writer, err error) {
	if isTerminal(w) {
		fmt.Fprintf(w, "zfake: %s\n", zstyle.StatusErr.Render(err.Error()))
		return
	}
	fmt.Fprintf(w, "zfake: %v\n", err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
