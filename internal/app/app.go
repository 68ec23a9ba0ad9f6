package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/a079777/internal/config"
	apperrors "github.com/agbru/a079777/internal/errors"
	"github.com/agbru/a079777/internal/logging"
	"github.com/agbru/a079777/internal/sequence"
	"github.com/agbru/a079777/internal/tui"
	"github.com/agbru/a079777/internal/ui"
)

const programDefaultName = "a079777"

// Application represents the a079777 application instance.
type Application struct {
	Config    config.AppConfig
	Factory   sequence.EngineFactory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom EngineFactory for the application.
func WithFactory(f sequence.EngineFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the console logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = sequence.GlobalFactory()
	}

	programName := programDefaultName
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		level := logging.LevelFor(cfg.Verbose, cfg.Quiet)
		if cfg.TUI {
			// The dashboard owns the terminal.
			level = logging.LevelDisabled
		}
		app.Logger = logging.NewConsoleLogger(errWriter, programDefaultName, level, cfg.NoColor)
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	ctx, cancel := a.lifecycleContext(ctx)
	defer cancel()

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runCompute(ctx, out)
}

// lifecycleContext applies the configured deadline and cancels on SIGINT or
// SIGTERM.
func (a *Application) lifecycleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	cancelTimeout := context.CancelFunc(func() {})
	if a.Config.Timeout > 0 {
		limit := apperrors.TimeoutError{Operation: "scan", Limit: a.Config.Timeout}
		ctx, cancelTimeout = context.WithTimeoutCause(ctx, a.Config.Timeout, limit)
	}
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	engines := a.engines()
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = e.Engine.Name()
	}
	return tui.Run(ctx, names, a.Config, Version, a.runFunc(engines))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
