package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/teamsgen/internal/artifact"
	"github.com/dshills/teamsgen/internal/config"
	"github.com/dshills/teamsgen/internal/fsio"
	"github.com/dshills/teamsgen/internal/generate"
	"github.com/dshills/teamsgen/internal/manifest"
	"github.com/dshills/teamsgen/internal/render"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// generateFlags holds the parsed flags for the generate command.
type generateFlags struct {
	configPath     string
	date           string
	manifestFormat string
	manifestOut    string
	plain          bool
	verbose        bool
}

func main() {
	root := &cobra.Command{
		Use:   "teamsgen",
		Short: "Generate a sample Teams folder-and-file scaffold",
		Long:  "Teamsgen generates a realistic collaboration-suite directory layout for a project's document lifecycle, populated with placeholder deliverables and dated review cycles.",
	}

	var flags generateFlags
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Create or refresh the scaffold described by a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(flags)
		},
	}

	f := generateCmd.Flags()
	f.StringVar(&flags.configPath, "config", "config.ini", "Path to the INI configuration file")
	f.StringVar(&flags.date, "date", "", "Run date as YYYY-MM-DD (default today); fixes the quarter bucket and cycle dates")
	f.StringVar(&flags.manifestFormat, "manifest-format", "text", "Manifest output format: text or json")
	f.StringVar(&flags.manifestOut, "manifest-out", "", "Write the run manifest to a file instead of stdout")
	f.BoolVar(&flags.plain, "plain", false, "Write plain-text stubs instead of spreadsheet workbooks")
	f.BoolVar(&flags.verbose, "verbose", false, "Print per-artifact progress to stderr")

	root.AddCommand(generateCmd)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func runGenerate(flags generateFlags) error {
	// --- Step 1: Validate flags ---
	runDate, err := resolveRunDate(flags.date)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}
	if flags.manifestFormat != "text" && flags.manifestFormat != "json" {
		return codeError(3, "invalid flags: --manifest-format must be text or json, got %q", flags.manifestFormat)
	}

	// --- Step 2: Load and validate configuration ---
	// Validation happens before anything touches the filesystem: a missing
	// section or key aborts with no directories created.
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return codeError(3, "%s", err)
	}

	// --- Step 3: Pick the artifact writer ---
	var writer artifact.Writer = artifact.NewExcelWriter()
	if flags.plain {
		writer = artifact.NewTextWriter()
	}

	// --- Step 4: Generate the tree ---
	gen := &generate.Generator{
		FS:     fsio.NewOSFS(),
		Writer: writer,
		Logf:   progressLogger(flags.verbose),
	}
	m, err := gen.Run(cfg, runDate)
	if err != nil {
		return codeError(4, "generating structure: %s", err)
	}

	m.Tool = "teamsgen"
	m.Version = version
	m.Input.Plain = flags.plain

	// --- Step 5: Render the manifest ---
	renderer, err := render.NewRenderer(flags.manifestFormat)
	if err != nil {
		return codeError(3, "invalid format: %s", err)
	}
	out, err := renderer.Render(m)
	if err != nil {
		return codeError(3, "rendering manifest: %s", err)
	}

	// --- Step 6: Write output ---
	if err := writeOutput(flags.manifestOut, out); err != nil {
		return codeError(3, "%s", err)
	}

	logCompletion(os.Stderr, m)
	return nil
}

// resolveRunDate parses --date or falls back to the current date.
func resolveRunDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--date must be YYYY-MM-DD, got %q", s)
	}
	return d, nil
}

// progressLogger returns the generator's progress sink: per-artifact lines on
// stderr when verbose, silent otherwise.
func progressLogger(verbose bool) func(format string, args ...any) {
	if !verbose {
		return nil
	}
	return func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
	}
}

func writeOutput(path string, out []byte) error {
	if path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("writing manifest file: %w", err)
		}
		return nil
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

func logCompletion(w *os.File, m *manifest.Manifest) {
	fmt.Fprintf(w, "INFO: generated %d directories and %d files under %s\n",
		m.Summary.DirCount, m.Summary.FileCount(), m.Input.Root)
}
