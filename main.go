package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"adventure/pkg/engine/config"
	"adventure/pkg/engine/input"
	"adventure/pkg/engine/logger"
	"adventure/pkg/game/devtools"
	"adventure/pkg/game/gameplay"
	"adventure/pkg/game/locale"
	"adventure/pkg/game/renderer/tui"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run plays one game and returns the process exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("adventure", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to an INI config file")
	lang := fs.String("lang", "", "message language ("+fmt.Sprint(locale.Available())+")")
	colorMode := fs.String("color", "", "color output: auto, always or never")
	bell := fs.Bool("bell", false, "ring the terminal bell on blocked moves")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	dumpMap := fs.Bool("dump-map", false, "print the starting map and exit (for developer testing)")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	// Flags win over file and environment, but only when given
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lang":
			cfg.Locale = *lang
		case "color":
			mode, err := config.ParseColorMode(*colorMode)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Color = mode
		case "bell":
			cfg.Bell = *bell
		case "log-level":
			cfg.LogLevel = config.ParseLogLevel(*logLevel)
		}
	})
	if flagErr != nil {
		fmt.Fprintln(stderr, flagErr)
		return exitUsage
	}

	catalog, err := locale.Load(cfg.Locale)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logOut := stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "cannot open log file: %v\n", err)
			return exitUsage
		}
		defer f.Close()
		logOut = f
	}

	g := gameplay.BuildGame()
	log := logger.WithSession(logger.Setup(cfg, logOut), g.SessionID.String())

	if *dumpMap {
		if err := devtools.DumpMap(g, stdout); err != nil {
			logger.WithError(log, err).Error("map dump failed")
			return exitError
		}
		return exitOK
	}

	log.Info("game started", "locale", catalog.Lang(), "color", cfg.Color, "bell", cfg.Bell)

	r := tui.New(stdin, stdout, catalog, tui.Options{
		Color: cfg.Color,
		Bell:  cfg.Bell,
		Width: cfg.WrapWidth,
	})

	return exitCode(gameplay.Run(g, r, log), log)
}

func exitCode(err error, log *slog.Logger) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, input.ErrEndOfInput):
		log.Debug("input closed before the game ended", "error", err)
		return exitOK
	default:
		logger.WithError(log, err).Error("game aborted")
		return exitError
	}
}
