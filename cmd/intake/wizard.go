package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-intake/internal/config"
	"github.com/goliatone/go-intake/pkg/export"
	"github.com/goliatone/go-intake/pkg/forms"
	"github.com/goliatone/go-intake/pkg/logging"
	"github.com/goliatone/go-intake/pkg/profile"
	"github.com/goliatone/go-intake/pkg/tui"
	"github.com/goliatone/go-intake/pkg/wizard"
)

func runWizard(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	format := fs.String("format", "", "output format: json, yaml or pretty")
	out := fs.String("out", "", "output file (stdout if empty)")
	resume := fs.String("resume", "", "snapshot file to resume from")
	session := fs.String("session", "", "snapshot file written when the wizard is interrupted")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load(config.WithFile(*configPath))
	if err != nil {
		fmt.Fprintf(stderr, "run: %v\n", err)
		return exitFailure
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.OutputFormat = *format
		case "out":
			cfg.OutputPath = *out
		case "session":
			cfg.SessionFile = *session
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "run: %v\n", err)
		return exitUsage
	}

	logger, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "run: %v\n", err)
		return exitFailure
	}
	defer closeLog()

	registry, err := export.Default()
	if err != nil {
		fmt.Fprintf(stderr, "run: %v\n", err)
		return exitFailure
	}
	if _, err := registry.Get(cfg.OutputFormat); err != nil {
		fmt.Fprintf(stderr, "run: %v\n", err)
		return exitUsage
	}

	c, err := controller(*resume, logger)
	if err != nil {
		fmt.Fprintf(stderr, "run: %v\n", err)
		return exitFailure
	}

	runner, err := tui.New(
		tui.WithLogger(logger),
		tui.WithYear(cfg.Year()),
		tui.WithProjection(cfg.ProjectionOptions()...),
		tui.WithFormOptions(forms.WithSaveDelay(cfg.SaveDelay)),
	)
	if err != nil {
		fmt.Fprintf(stderr, "run: %v\n", err)
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p, runErr := runner.Run(ctx, c)
	if cfg.SessionFile != "" {
		if err := wizard.WriteSnapshot(cfg.SessionFile, c.Snapshot()); err != nil {
			logger.Error("snapshot not saved", zap.Error(err))
			fmt.Fprintf(stderr, "run: %v\n", err)
		} else if runErr != nil {
			fmt.Fprintf(stderr, "Sessão salva em %s. Use -resume para continuar.\n", cfg.SessionFile)
		}
	}
	if runErr != nil {
		if errors.Is(runErr, tui.ErrAborted) || errors.Is(runErr, context.Canceled) {
			logger.Info("wizard interrupted", zap.Int("step", c.Cursor()))
			return exitAborted
		}
		fmt.Fprintf(stderr, "run: %v\n", runErr)
		return exitFailure
	}

	return emit(context.Background(), registry, cfg.OutputFormat, p, cfg.OutputPath, stdout, stderr)
}

func controller(resume string, logger *logging.Logger) (*wizard.Controller, error) {
	if resume == "" {
		return wizard.New(wizard.WithLogger(logger)), nil
	}
	snap, err := wizard.ReadSnapshot(resume)
	if err != nil {
		return nil, err
	}
	return wizard.Restore(snap, wizard.WithLogger(logger))
}

func emit(ctx context.Context, registry *export.Registry, format string, p profile.Profile, path string, stdout, stderr io.Writer) int {
	data, err := registry.Render(ctx, format, p)
	if err != nil {
		fmt.Fprintf(stderr, "run: %v\n", err)
		return exitFailure
	}
	if err := writeOutput(path, data, stdout); err != nil {
		fmt.Fprintf(stderr, "run: %v\n", err)
		return exitFailure
	}
	if path != "" {
		fmt.Fprintf(stderr, "Perfil gravado em %s\n", path)
	}
	return exitOK
}

// newLogger logs to LogFile when set so prompts stay readable, stderr
// otherwise.
func newLogger(cfg config.Config, stderr io.Writer) (*logging.Logger, func(), error) {
	var opts []logging.Option
	if cfg.LogConsole {
		opts = append(opts, logging.WithConsoleEncoding())
	}
	closer := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		opts = append(opts, logging.WithSink(zapcore.AddSync(f)))
		closer = func() { _ = f.Close() }
	} else {
		opts = append(opts, logging.WithSink(zapcore.AddSync(stderr)))
	}
	logger := logging.New(cfg.LogLevel, opts...)
	return logger, func() {
		_ = logger.Sync()
		closer()
	}, nil
}
