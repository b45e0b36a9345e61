// Package conf resolves the configuration of rationalize.
//
// # Usage
//
//	config, err := conf.Resolve(os.Args[1:])
//	switch {
//	case errors.Is(err, conf.ErrHelpRequested):
//	    os.Exit(0)
//	case err != nil:
//	    os.Exit(1)
//	}
//	fmt.Println(config.RPCAddress(), config.Network())
//
// For tests or custom option schemas, use a Resolver:
//
//	r := conf.NewResolver(&stdout, &stderr)
//	config, err := r.Resolve([]string{"-H", "node.example.com"})
//
// # Load Order
//
// Each property is resolved independently from three layers, the later
// winning:
//
//  1. Built-in defaults, embedded from defaults.toml
//  2. The configuration file named by -f/--config, if any
//  3. Options given on the command line
//
// The configuration file is TOML when its name ends in .toml and a Java style
// properties file otherwise. Keys are the long option names. In properties
// files:
//
//   - key and value are separated by "=", ":" or whitespace, and the
//     whitespace around the separator is dropped ("port = 8332" sets port)
//   - lines starting with "#" or "!" are comments
//   - "account=" sets account to the empty string, overriding the default
//   - a backslash at the end of a line continues the value on the next line
//   - ${name} is not expanded
//   - there are no sections: a "[name]" line is an unknown key and the keys
//     below it apply as usual
//   - unknown keys are ignored
//
// A file that cannot be read or decoded fails resolution with
// ErrConfigFileUnreadable; no key is dropped silently.
//
// # Network
//
// Config.Testnet is true when the resolved port, as written, starts with
// "11". It is computed from the same string that is parsed into Config.Port.
//
// # Internal Architecture
//
//   - configDTO: one layer, with pointer fields so that "not set" (nil) is
//     distinct from "set to an empty string".
//
//   - Config: the resolved value, built from the merged layers by
//     configDTO.resolve.
//
//   - Option: one entry of the command line schema. The cli flag set is
//     rebuilt from the schema on every call to Resolve.
package conf
