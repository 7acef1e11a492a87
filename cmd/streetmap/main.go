package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/voidnova-code/streetmap/internal/app"
	"github.com/voidnova-code/streetmap/internal/cli"
)

// main is the entrypoint for the streetmap renderer.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Stdin, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Failed to render map. Try a more specific place name.")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCodeRenderFailed)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, inR io.Reader, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW, inR)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	renderApp, err := app.NewApp(outW, errW, appConfig)
	if err != nil {
		return err
	}

	return renderApp.Run(context.Background())
}
