// Package cli turns command-line arguments and, when necessary, an
// interactive prompt into an app configuration.
package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/voidnova-code/streetmap/internal/app"
)

// Exit codes: 0 success, ExitCodeNoInput when no place name could be
// resolved, ExitCodeRenderFailed when the pipeline fails. Usage errors
// share the render-failure code.
const (
	ExitCodeNoInput      = 1
	ExitCodeRenderFailed = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments into a populated app.Config.
// The place query is the non-flag arguments joined by spaces; when that
// is empty the user is prompted once on inR. It returns a boolean
// indicating the program should exit cleanly (help requested), or an
// ExitError.
func Parse(args []string, outW io.Writer, inR io.Reader) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("streetmap", flag.ContinueOnError)
	flagSet.SetOutput(outW)

	flagSet.Usage = func() {
		fmt.Fprint(outW, `
streetmap - render a street-only map image for a place.

Usage:
  streetmap [options] PLACE...

Arguments:
  PLACE
    Free-form place query, e.g. "Lausanne, Switzerland". Multiple
    arguments are joined with spaces. Prompted for when omitted.

Environment:
  PYMAP_BG          Background hex color (e.g. #ffffff, #f8eac2).
  PYMAP_KEEP_CACHE  Set to 1 to keep the cache folder between runs.

Options:
`)
		flagSet.PrintDefaults()
	}

	outputFlag := flagSet.String("output", app.DefaultOutputPath, "Path of the PNG to write.")
	cacheDirFlag := flagSet.String("cache-dir", app.DefaultCacheDir, "Directory for downloaded API responses.")
	styleFlag := flagSet.String("style", "", "Optional HCL style profile.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	nominatimFlag := flagSet.String("nominatim-url", "", "Override the Nominatim endpoint.")
	overpassFlag := flagSet.String("overpass-url", "", "Override the Overpass endpoint.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitCodeRenderFailed, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitCodeRenderFailed, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitCodeRenderFailed, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	place := strings.TrimSpace(strings.Join(flagSet.Args(), " "))
	if place == "" {
		place = promptForPlace(outW, inR)
	}
	if place == "" {
		return nil, false, &ExitError{Code: ExitCodeNoInput, Message: "No input provided. Exiting."}
	}

	cfg, err := app.NewConfig(app.Config{
		Place:        place,
		OutputPath:   *outputFlag,
		CacheDir:     *cacheDirFlag,
		StylePath:    *styleFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		NominatimURL: *nominatimFlag,
		OverpassURL:  *overpassFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitCodeRenderFailed, Message: err.Error()}
	}
	return cfg, false, nil
}

// promptForPlace asks for a place query and reads one line.
func promptForPlace(outW io.Writer, inR io.Reader) string {
	fmt.Fprintln(outW, "Enter a city/state/country (e.g. 'Guwahati/Assam/India'):")
	scanner := bufio.NewScanner(inR)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
