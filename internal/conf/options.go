package conf

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/thoughtnetwork/rationalize/internal/l10n"
)

// Names of the options that control resolution rather than set a property.
const (
	optionConfig = "config"
	optionHelp   = "help"
)

// Option describes one command line option.
type Option struct {
	// Name is the long option name.
	Name string
	// Short is the one letter alias, if any.
	Short string
	Usage string
	// Key is the property the option overrides. Empty for config and help.
	Key string
	// Switch options take no value.
	Switch bool
}

// Options returns the option schema of the resolver. Each call builds a new
// slice, so callers may modify the result freely.
func Options() []Option {
	return []Option{
		{Name: KeyHost, Short: "H", Key: KeyHost, Usage: l10n.T("Thought RPC server host")},
		{Name: KeyPort, Short: "P", Key: KeyPort, Usage: l10n.T("Thought RPC server port")},
		{Name: KeyUser, Short: "u", Key: KeyUser, Usage: l10n.T("Thought server RPC user")},
		{Name: KeyPassword, Short: "p", Key: KeyPassword, Usage: l10n.T("Thought server RPC password")},
		{Name: KeyPrefix, Short: "x", Key: KeyPrefix, Usage: l10n.T("Prefix for created account names")},
		{Name: KeyAccount, Short: "a", Key: KeyAccount, Usage: l10n.T("Thought wallet account name to obtain funds from")},
		{Name: KeyAccountFile, Short: "A", Key: KeyAccountFile, Usage: l10n.T("File containing funding lines")},
		{Name: KeyOutput, Short: "o", Key: KeyOutput, Usage: l10n.T("File to write account keys to")},
		{Name: KeyLogLevel, Short: "l", Key: KeyLogLevel, Usage: l10n.T("Log verbosity (DEBUG, INFO, WARN or ERROR)")},
		{Name: optionConfig, Short: "f", Usage: l10n.T("Configuration file to load options from. Command line options override config file.")},
		{Name: optionHelp, Short: "h", Switch: true, Usage: l10n.T("Displays usage information")},
	}
}

// validateOptions rejects schemas in which two options share a name or alias,
// or an option overrides an unknown property.
func validateOptions(options []Option) error {
	seen := make(map[string]string, 2*len(options))
	for _, o := range options {
		if o.Name == "" {
			return fmt.Errorf("option without a name")
		}
		for _, name := range o.names() {
			if other, ok := seen[name]; ok {
				return fmt.Errorf("options %q and %q both use %q", other, o.Name, name)
			}
			seen[name] = o.Name
		}
		if o.Key != "" && defaults.field(o.Key) == nil {
			return fmt.Errorf("option %q overrides unknown property %q", o.Name, o.Key)
		}
	}
	return nil
}

func (o Option) names() []string {
	if o.Short == "" {
		return []string{o.Name}
	}
	return []string{o.Name, o.Short}
}

// flagValues holds the destinations of parsed options, keyed by option name.
type flagValues struct {
	strings  map[string]*string
	switches map[string]*bool
}

// flags builds a fresh cli flag set for options. The built-in default of each
// property is shown as the flag's default in usage text.
func flags(options []Option) ([]cli.Flag, flagValues) {
	values := flagValues{
		strings:  make(map[string]*string, len(options)),
		switches: make(map[string]*bool),
	}
	result := make([]cli.Flag, 0, len(options))

	for _, o := range options {
		var aliases []string
		if o.Short != "" {
			aliases = []string{o.Short}
		}

		if o.Switch {
			destination := new(bool)
			values.switches[o.Name] = destination
			result = append(result, &cli.BoolFlag{
				Name:        o.Name,
				Aliases:     aliases,
				Usage:       o.Usage,
				Destination: destination,
			})
			continue
		}

		var defaultText string
		if o.Key != "" {
			defaultText, _ = defaults.get(o.Key)
		}
		destination := new(string)
		values.strings[o.Name] = destination
		result = append(result, &cli.StringFlag{
			Name:        o.Name,
			Aliases:     aliases,
			Usage:       o.Usage,
			DefaultText: defaultText,
			TakesFile:   o.Name == optionConfig,
			Destination: destination,
		})
	}

	return result, values
}
