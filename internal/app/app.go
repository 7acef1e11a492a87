package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/voidnova-code/streetmap/internal/cachedir"
	"github.com/voidnova-code/streetmap/internal/ctxlog"
	"github.com/voidnova-code/streetmap/internal/flatten"
	"github.com/voidnova-code/streetmap/internal/geocode"
	"github.com/voidnova-code/streetmap/internal/overpass"
	"github.com/voidnova-code/streetmap/internal/style"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cfg      *Config
	renderer *Renderer
}

// NewApp builds a fully initialized App: isolated logger, resolved style,
// API clients sharing one response cache, and the renderer.
func NewApp(outW, errW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	st := style.Default()
	if cfg.StylePath != "" {
		loaded, err := style.Load(cfg.StylePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load style profile: %w", err)
		}
		st = loaded
		logger.Debug("Style profile loaded.", "path", cfg.StylePath)
	}

	cache := cachedir.New(cfg.CacheDir)

	geocoder := geocode.NewClient(cache)
	if cfg.NominatimURL != "" {
		geocoder.BaseURL = cfg.NominatimURL
	}

	roads := overpass.NewClient(cache)
	if cfg.OverpassURL != "" {
		roads.BaseURL = cfg.OverpassURL
	}

	renderer := &Renderer{
		Geocoder:  geocoder,
		Roads:     roads,
		Flattener: flatten.New(),
		Style:     st,
		CacheDir:  cfg.CacheDir,
	}

	return &App{
		outW:     outW,
		logger:   logger,
		cfg:      cfg,
		renderer: renderer,
	}, nil
}

// Run renders the configured place and prints the output path.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "place", a.cfg.Place)

	path, err := a.renderer.Render(ctx, a.cfg.Place, a.cfg.OutputPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "Saved detailed map to: %s\n", path)
	a.logger.Debug("App.Run method finished.")
	return nil
}
