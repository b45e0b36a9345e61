package conf

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Helper functions for creating pointer values in DTO tests
func stringPtr(s string) *string { return &s }

func TestConfigDTO_Update(t *testing.T) {
	tests := []struct {
		name     string
		base     configDTO
		overlay  configDTO
		expected configDTO
	}{
		{
			name: "overlay replaces values",
			base: configDTO{
				Host: stringPtr("localhost"),
				Port: stringPtr("11617"),
			},
			overlay: configDTO{
				Host: stringPtr("node.example.com"),
				Port: stringPtr("8332"),
			},
			expected: configDTO{
				Host: stringPtr("node.example.com"),
				Port: stringPtr("8332"),
			},
		},
		{
			name: "overlay partial update",
			base: configDTO{
				Host: stringPtr("localhost"),
				User: stringPtr("user"),
			},
			overlay: configDTO{
				User: stringPtr("bob"),
			},
			expected: configDTO{
				Host: stringPtr("localhost"),
				User: stringPtr("bob"),
			},
		},
		{
			name: "empty overlay does nothing",
			base: configDTO{
				Prefix: stringPtr("Rationalize"),
			},
			overlay: configDTO{},
			expected: configDTO{
				Prefix: stringPtr("Rationalize"),
			},
		},
		{
			name: "overlay can set empty strings",
			base: configDTO{
				Account:  stringPtr("savings"),
				Password: stringPtr("password"),
			},
			overlay: configDTO{
				Account:  stringPtr(""),
				Password: stringPtr(""),
			},
			expected: configDTO{
				Account:  stringPtr(""),
				Password: stringPtr(""),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.base
			result.Update(tt.overlay)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Update() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigDTO_UpdateDoesNotAlias(t *testing.T) {
	base := configDTO{Host: stringPtr("localhost")}
	result := base
	result.Update(configDTO{Host: stringPtr("node.example.com")})

	if *base.Host != "localhost" {
		t.Errorf("Update() modified the base layer: host=%s", *base.Host)
	}
}

func TestParseConfigDTO(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    configDTO
	}{
		{
			name: "valid TOML string",
			input: `
host = "node.example.com"
accountFile = "funding.csv"
`,
			expected: configDTO{
				Host:        stringPtr("node.example.com"),
				AccountFile: stringPtr("funding.csv"),
			},
		},
		{
			name:     "integer port",
			input:    `port = 8332`,
			expected: configDTO{Port: stringPtr("8332")},
		},
		{
			name:     "unknown keys are ignored",
			input:    `color = "red"`,
			expected: configDTO{},
		},
		{
			name:     "empty string",
			input:    "",
			expected: configDTO{},
		},
		{
			name:        "table value",
			input:       "[host]\nname = \"x\"",
			expectError: true,
		},
		{
			name:        "invalid TOML",
			input:       "not valid toml ===",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseConfigDTO(tt.input)

			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.expectError {
				if diff := cmp.Diff(tt.expected, result); diff != "" {
					t.Errorf("parseConfigDTO() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestEmbeddedDefault(t *testing.T) {
	dto, err := parseConfigDTO(defaultConfig)
	if err != nil {
		t.Fatalf("embedded default config is invalid: %v", err)
	}

	for _, key := range propertyKeys {
		if _, ok := dto.get(key); !ok {
			t.Errorf("embedded defaults do not set %q", key)
		}
	}

	config, err := dto.resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := Config{
		Host:            "localhost",
		Port:            11617,
		User:            "user",
		Password:        "password",
		Prefix:          "Rationalize",
		SourceAccount:   "",
		AccountFileName: "rationalize_input.csv",
		OutputFileName:  "rationalize_results.csv",
		Testnet:         true,
		LogLevel:        slog.LevelInfo,
	}
	if diff := cmp.Diff(expected, config); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigDTO_Resolve(t *testing.T) {
	tests := []struct {
		port        string
		testnet     bool
		expectError bool
	}{
		{port: "11617", testnet: true},
		{port: "11618", testnet: true},
		{port: "11000", testnet: true},
		{port: "1100", testnet: true},
		{port: "8332", testnet: false},
		{port: "211617", testnet: false},
		{port: "1", testnet: false},
		{port: "abc", expectError: true},
		{port: "", expectError: true},
		{port: "11617 ", expectError: true},
		{port: "2147483647", testnet: false},
		{port: "-11617", testnet: false},
		{port: "2147483648", expectError: true},
		{port: "99999999999", expectError: true},
		{port: "11999999999", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			dto := defaults
			dto.Update(configDTO{Port: stringPtr(tt.port)})

			config, err := dto.resolve()
			if tt.expectError {
				if !errors.Is(err, ErrInvalidPort) {
					t.Fatalf("expected ErrInvalidPort, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if config.Testnet != tt.testnet {
				t.Errorf("expected Testnet=%v for port %s, got %v", tt.testnet, tt.port, config.Testnet)
			}
		})
	}
}

func TestConfigDTO_ResolveLogLevel(t *testing.T) {
	tests := []struct {
		value    string
		expected slog.Level
	}{
		{value: "DEBUG", expected: slog.LevelDebug},
		{value: "debug", expected: slog.LevelDebug},
		{value: "WARN", expected: slog.LevelWarn},
		{value: "ERROR", expected: slog.LevelError},
		{value: "TRACE", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			dto := defaults
			dto.Update(configDTO{LogLevel: stringPtr(tt.value)})

			config, err := dto.resolve()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if config.LogLevel != tt.expected {
				t.Errorf("expected LogLevel=%v, got %v", tt.expected, config.LogLevel)
			}
		})
	}
}

func TestConfig_Helpers(t *testing.T) {
	config := Config{Host: "node.example.com", Port: 8332, User: "bob", Password: "secret"}

	if got := config.RPCAddress(); got != "node.example.com:8332" {
		t.Errorf("RPCAddress() = %s", got)
	}
	if got := config.Network(); got != "mainnet" {
		t.Errorf("Network() = %s", got)
	}

	config.Testnet = true
	if got := config.Network(); got != "testnet" {
		t.Errorf("Network() = %s", got)
	}

	summary := config.String()
	if strings.Contains(summary, "secret") {
		t.Errorf("String() leaks the password: %s", summary)
	}
	if !strings.Contains(summary, "user=bob") {
		t.Errorf("String() = %s", summary)
	}
}
