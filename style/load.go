package style

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a configuration file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Load reads a style from a .yaml, .yml or .toml file. Fields missing from
// the file keep their Default values.
func Load(path string) (Style, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = YAML
	case ".toml":
		format = TOML
	default:
		return Style{}, fmt.Errorf("style: unsupported file extension %q", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("style: read %s: %w", path, err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return Style{}, fmt.Errorf("style: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a style from data in the given format and validates it.
func Parse(data []byte, format Format) (Style, error) {
	s := Default()
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &s)
	case TOML:
		err = toml.Unmarshal(data, &s)
	default:
		return Style{}, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return Style{}, fmt.Errorf("decode %s: %w", format, err)
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}
