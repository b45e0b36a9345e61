package conf

import (
	_ "embed"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

func init() {
	dto, err := parseConfigDTO(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded defaults: %v", err))
	}
	defaults = dto
}

// defaultConfig contains the embedded default configuration file. It is the
// base layer that configuration files and command line options are applied
// on top of.
//
//go:embed defaults.toml
var defaultConfig string

// defaults is the parsed form of defaultConfig. Every field is set.
var defaults configDTO

// Property keys. The same names are used for long command line options and
// for keys in configuration files.
const (
	KeyHost        = "host"
	KeyPort        = "port"
	KeyUser        = "user"
	KeyPassword    = "password"
	KeyPrefix      = "prefix"
	KeyAccount     = "account"
	KeyAccountFile = "accountFile"
	KeyOutput      = "output"
	KeyLogLevel    = "log-level"
)

var propertyKeys = []string{
	KeyHost,
	KeyPort,
	KeyUser,
	KeyPassword,
	KeyPrefix,
	KeyAccount,
	KeyAccountFile,
	KeyOutput,
	KeyLogLevel,
}

// testnetPortPrefix marks ports of the test network. The check is textual:
// "1100" and "11617" are testnet ports, "211617" is not.
const testnetPortPrefix = "11"

// Config represents the immutable resolved configuration. It is produced once
// by [Resolver.Resolve] and passed around by value.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string

	Prefix          string
	SourceAccount   string
	AccountFileName string
	OutputFileName  string

	// Testnet is derived from the textual port value, never set directly.
	Testnet  bool
	LogLevel slog.Level
}

// RPCAddress returns the host:port pair of the wallet RPC endpoint.
func (c Config) RPCAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Network names the wallet network selected by the port.
func (c Config) Network() string {
	if c.Testnet {
		return "testnet"
	}
	return "mainnet"
}

// String summarizes the configuration with the password masked.
func (c Config) String() string {
	password := ""
	if c.Password != "" {
		password = "********"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s prefix=%s account=%q accountFile=%s output=%s network=%s",
		c.Host, c.Port, c.User, password, c.Prefix, c.SourceAccount, c.AccountFileName, c.OutputFileName, c.Network())
}

// configDTO is one configuration layer. A nil field is not set by the layer;
// a pointer to an empty string is an explicit empty value.
type configDTO struct {
	Host        *string `toml:"host"`
	Port        *string `toml:"port"`
	User        *string `toml:"user"`
	Password    *string `toml:"password"`
	Prefix      *string `toml:"prefix"`
	Account     *string `toml:"account"`
	AccountFile *string `toml:"accountFile"`
	Output      *string `toml:"output"`
	LogLevel    *string `toml:"log-level"`
}

// field returns the field holding key, or nil for an unknown key.
func (dto *configDTO) field(key string) **string {
	switch key {
	case KeyHost:
		return &dto.Host
	case KeyPort:
		return &dto.Port
	case KeyUser:
		return &dto.User
	case KeyPassword:
		return &dto.Password
	case KeyPrefix:
		return &dto.Prefix
	case KeyAccount:
		return &dto.Account
	case KeyAccountFile:
		return &dto.AccountFile
	case KeyOutput:
		return &dto.Output
	case KeyLogLevel:
		return &dto.LogLevel
	}
	return nil
}

// set stores value under key. Unknown keys are ignored.
func (dto *configDTO) set(key, value string) {
	if f := dto.field(key); f != nil {
		*f = &value
	}
}

// get returns the value stored under key and whether the layer sets it.
func (dto *configDTO) get(key string) (string, bool) {
	f := dto.field(key)
	if f == nil || *f == nil {
		return "", false
	}
	return **f, true
}

// Update applies non-nil values from overlay.
func (dto *configDTO) Update(overlay configDTO) {
	for _, key := range propertyKeys {
		if value, ok := overlay.get(key); ok {
			dto.set(key, value)
		}
	}
}

// parseConfigDTO parses a TOML string into a configDTO. Scalar values of any
// TOML type are accepted and kept in their textual form, so both port = 8332
// and port = "8332" work. Unknown keys are ignored.
func parseConfigDTO(data string) (configDTO, error) {
	var dto configDTO
	var values map[string]interface{}

	if err := toml.Unmarshal([]byte(data), &values); err != nil {
		return dto, fmt.Errorf("failed to parse TOML: %w", err)
	}

	for _, key := range propertyKeys {
		value, ok := values[key]
		if !ok {
			continue
		}
		switch value.(type) {
		case map[string]interface{}, []interface{}, []map[string]interface{}:
			return dto, fmt.Errorf("key %q must hold a single value", key)
		}
		dto.set(key, fmt.Sprint(value))
	}

	return dto, nil
}

// resolve turns a fully populated layer into a Config. The port string is
// parsed once and the same string decides the network.
func (dto configDTO) resolve() (Config, error) {
	value := func(key string) string {
		v, _ := dto.get(key)
		return v
	}

	port := value(KeyPort)
	// The port must fit in a signed 32-bit integer.
	portNumber, err := strconv.ParseInt(port, 10, 32)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %q: %w", ErrInvalidPort, port, err)
	}

	config := Config{
		Host:            value(KeyHost),
		Port:            int(portNumber),
		User:            value(KeyUser),
		Password:        value(KeyPassword),
		Prefix:          value(KeyPrefix),
		SourceAccount:   value(KeyAccount),
		AccountFileName: value(KeyAccountFile),
		OutputFileName:  value(KeyOutput),
		Testnet:         strings.HasPrefix(port, testnetPortPrefix),
		LogLevel:        slog.LevelInfo,
	}

	logLevel := value(KeyLogLevel)
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		config.LogLevel = slog.LevelDebug
	case "INFO":
		config.LogLevel = slog.LevelInfo
	case "WARN":
		config.LogLevel = slog.LevelWarn
	case "ERROR":
		config.LogLevel = slog.LevelError
	default:
		slog.Warn("unknown log level, using INFO", "log-level", logLevel)
	}

	return config, nil
}
