package main

import (
	"errors"
	"log/slog"
	"os"

	"git.sr.ht/~spc/go-log"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/thoughtnetwork/rationalize/internal/conf"
	"github.com/thoughtnetwork/rationalize/internal/l10n"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Diagnostics go to stderr, so color depends on stderr being a terminal.
	color.NoColor = !term.IsTerminal(int(os.Stderr.Fd()))

	config, err := conf.Resolve(args)
	if err != nil {
		code, report := exitCode(err)
		if report {
			log.Error(l10n.T("cannot resolve configuration: %v", err))
		}
		return code
	}

	slog.SetLogLoggerLevel(config.LogLevel)
	log.SetLevel(logLevel(config.LogLevel))

	log.Info(l10n.T("using wallet RPC at %v on %v", config.RPCAddress(), config.Network()))
	log.Debugf("resolved configuration: %v", config)
	return exitOK
}

// exitCode maps a resolution error to the process exit code and reports
// whether it still needs to be logged. Usage errors and unreadable
// configuration files have already been explained on the terminal.
func exitCode(err error) (int, bool) {
	switch {
	case errors.Is(err, conf.ErrHelpRequested):
		return exitOK, false
	case errors.Is(err, conf.ErrParse):
		return exitUsage, false
	case errors.Is(err, conf.ErrConfigFileUnreadable):
		return exitError, false
	default:
		return exitError, true
	}
}

// logLevel maps a slog level onto the closest go-log level.
func logLevel(level slog.Level) log.Level {
	switch {
	case level <= slog.LevelDebug:
		return log.LevelDebug
	case level <= slog.LevelInfo:
		return log.LevelInfo
	case level <= slog.LevelWarn:
		return log.LevelWarn
	default:
		return log.LevelError
	}
}
