package conf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
)

// readConfigFile reads the configuration file at path and applies it on top
// of base. Files ending in .toml are decoded as TOML, anything else as a Java
// style properties file.
func readConfigFile(path string, base configDTO) (configDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to load %s: %w", path, err)
	}

	format := "properties"
	parse := parseProperties
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
		parse = func(data []byte) (configDTO, error) {
			return parseConfigDTO(string(data))
		}
	}

	dto, err := parse(data)
	if err != nil {
		return base, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	base.Update(dto)

	slog.Debug("loaded configuration file", "path", path, "format", format)
	return base, nil
}

// parseProperties decodes properties data into a configDTO holding only the
// keys present in data. Separators are "=", ":" or whitespace, surrounding
// whitespace is dropped, "#" and "!" start comments, and an empty value is a
// value. ${name} references are kept literally. Unknown keys are ignored.
func parseProperties(data []byte) (configDTO, error) {
	var dto configDTO

	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return dto, fmt.Errorf("failed to parse properties: %w", err)
	}

	for _, key := range propertyKeys {
		if value, ok := p.Get(key); ok {
			dto.set(key, value)
		}
	}

	return dto, nil
}
