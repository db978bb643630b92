package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}

	if err := Finalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize fills defaults, normalizes values and validates cfg. It is run
// again after command-line overrides are applied.
func Finalize(cfg *Config) error {
	applyDefaults(cfg)
	normalize(cfg)
	return Validate(cfg)
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if strings.TrimSpace(cfg.Directory) == "" {
		cfg.Directory = "."
	}
	if len(cfg.Scan.Extensions) == 0 {
		cfg.Scan.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if strings.TrimSpace(cfg.Parser.Mode) == "" {
		cfg.Parser.Mode = ParserModeLexical
	}
	if strings.TrimSpace(cfg.Output.Path) == "" {
		cfg.Output.Path = DefaultOutputFile
	}
	if strings.TrimSpace(cfg.Output.Title) == "" {
		cfg.Output.Title = DefaultTitle
	}
}

func normalize(cfg *Config) {
	cfg.Directory = strings.TrimSpace(cfg.Directory)
	cfg.Parser.Mode = strings.ToLower(strings.TrimSpace(cfg.Parser.Mode))
	cfg.Output.Path = strings.TrimSpace(cfg.Output.Path)
	cfg.Metrics.File = strings.TrimSpace(cfg.Metrics.File)
	cfg.Include = trimAll(cfg.Include)
	cfg.IgnoreLibs = trimAll(cfg.IgnoreLibs)
	for i, ext := range cfg.Scan.Extensions {
		cfg.Scan.Extensions[i] = strings.TrimSpace(ext)
	}
}

func trimAll(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
