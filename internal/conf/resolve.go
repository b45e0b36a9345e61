package conf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/thoughtnetwork/rationalize/internal/l10n"
)

// Name is the program name shown in usage text.
const Name = "rationalize"

// Resolver merges command line options, an optional configuration file and
// the built-in defaults into a Config.
type Resolver struct {
	// Options is the option schema the command line is parsed against.
	Options []Option
	// Stdout receives usage text.
	Stdout io.Writer
	// Stderr receives parse errors and diagnostics.
	Stderr io.Writer
}

// NewResolver returns a Resolver using the schema returned by [Options].
func NewResolver(stdout, stderr io.Writer) *Resolver {
	return &Resolver{
		Options: Options(),
		Stdout:  stdout,
		Stderr:  stderr,
	}
}

// Resolve resolves args with a new Resolver writing to the process's
// standard output and error.
func Resolve(args []string) (Config, error) {
	return NewResolver(os.Stdout, os.Stderr).Resolve(args)
}

// Resolve parses args, which must not include the program name, and returns
// the resolved configuration. For every property the command line wins over
// the configuration file, which wins over the built-in default.
//
// When no Config is produced, the returned error wraps one of
// ErrHelpRequested, ErrParse, ErrConfigFileUnreadable or ErrInvalidPort.
// Resolve never terminates the process.
func (r *Resolver) Resolve(args []string) (Config, error) {
	if err := validateOptions(r.Options); err != nil {
		return Config{}, fmt.Errorf("invalid option schema: %w", err)
	}

	var config Config

	cliFlags, values := flags(r.Options)
	app := &cli.App{
		Name:            Name,
		HelpName:        Name,
		Usage:           l10n.T("distribute funds from a Thought wallet account to new accounts"),
		Flags:           cliFlags,
		HideHelp:        true,
		HideHelpCommand: true,
		Writer:          r.Stdout,
		ErrWriter:       r.Stderr,
		ExitErrHandler:  func(*cli.Context, error) {},
		OnUsageError: func(c *cli.Context, err error, _ bool) error {
			fmt.Fprintln(r.Stderr, err)
			_ = cli.ShowAppHelp(c)
			return fmt.Errorf("%w: %w", ErrParse, err)
		},
		Action: func(c *cli.Context) error {
			if help, ok := values.switches[optionHelp]; ok && *help {
				_ = cli.ShowAppHelp(c)
				return ErrHelpRequested
			}

			var err error
			config, err = r.resolve(c, values)
			return err
		},
	}

	err := app.Run(append([]string{Name}, args...))
	switch {
	case err == nil:
		return config, nil
	case errors.Is(err, ErrHelpRequested),
		errors.Is(err, ErrParse),
		errors.Is(err, ErrConfigFileUnreadable),
		errors.Is(err, ErrInvalidPort):
		return Config{}, err
	default:
		return Config{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
}

// resolve applies the layers in order of increasing precedence: defaults,
// configuration file, command line.
func (r *Resolver) resolve(c *cli.Context, values flagValues) (Config, error) {
	dto := defaults

	if c.IsSet(optionConfig) {
		path := *values.strings[optionConfig]
		fileDTO, err := readConfigFile(path, dto)
		if err != nil {
			_, _ = color.New(color.FgRed).Fprintln(r.Stderr,
				l10n.T("Specified configuration file %s unreadable or not found.", path))
			slog.Debug("cannot read configuration file", "path", path, "error", err)
			return Config{}, fmt.Errorf("%w: %w", ErrConfigFileUnreadable, err)
		}
		dto = fileDTO
	}

	var commandLine configDTO
	for _, o := range r.Options {
		if o.Key == "" || o.Switch || !c.IsSet(o.Name) {
			continue
		}
		commandLine.set(o.Key, *values.strings[o.Name])
		slog.Debug("command line overrides property", "key", o.Key)
	}
	dto.Update(commandLine)

	return dto.resolve()
}
