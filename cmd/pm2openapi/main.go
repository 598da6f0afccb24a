package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/pm2openapi/pm2openapi"
	"github.com/pm2openapi/pm2openapi/cmd/pm2openapi/internal/cmdutil"
)

var version = "dev"

func getVersion() string {
	if version != "dev" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}
	return version
}

var outputFormat string
var verbose bool

var rootCmd = &cobra.Command{
	Use:     "pm2openapi [file]",
	Short:   "Convert a Postman Collection v2.1.0 document into an OpenAPI 3.0 document",
	Long:    `pm2openapi reads a Postman Collection v2.1.0 document, either from a file or from standard input, and writes the equivalent OpenAPI 3.0.3 document to standard output.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	rootCmd.Version = getVersion()
	rootCmd.Flags().StringVarP(&outputFormat, "output-format", "f", "yaml", `output format, "yaml" or "json"`)
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr (the number of paths converted; per-request anomalies are not reported)")
	// "-v" is already taken by --verbose, so cobra's auto-added version
	// flag would otherwise fall back to --version with no shorthand at
	// all; define it ourselves with -V so both forms work.
	rootCmd.Flags().BoolP("version", "V", false, "version for pm2openapi")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

func run(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	data, err := readInput(path)
	if err != nil {
		return err
	}

	doc, err := pm2openapi.TranspileJSON(data)
	if err != nil {
		return err
	}
	logger.Debug("transpiled collection", "paths", doc.Paths.Len())

	var out []byte
	switch outputFormat {
	case "yaml", "":
		out, err = pm2openapi.ToYAML(doc)
	case "json":
		out, err = pm2openapi.ToJSON(doc)
	default:
		return fmt.Errorf(`invalid --output-format %q, want "yaml" or "json"`, outputFormat)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func readInput(path string) ([]byte, error) {
	if cmdutil.IsStdin(path) {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var pmErr *pm2openapi.Error
		if errors.As(err, &pmErr) {
			cmdutil.Dief("%s: %s", pmErr.Kind, pmErr.Message)
		}
		cmdutil.Die(err)
	}
}
