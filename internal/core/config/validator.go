package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Validate checks the whole configuration and joins every problem found.
func Validate(cfg *Config) error {
	var errs []error
	for _, check := range []func(*Config) error{
		validateVersion,
		validateScan,
		validateParser,
		validateOutput,
	} {
		if err := check(cfg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func validateVersion(cfg *Config) error {
	if cfg.Version < 1 {
		return fmt.Errorf("version must be >= 1, got %d", cfg.Version)
	}
	if cfg.Version > 1 {
		return fmt.Errorf("unsupported config version %d; supported version is 1", cfg.Version)
	}
	return nil
}

func validateScan(cfg *Config) error {
	if len(cfg.Scan.Extensions) == 0 {
		return fmt.Errorf("scan.extensions must list at least one extension")
	}
	for i, ext := range cfg.Scan.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("scan.extensions[%d] %q must start with a dot", i, ext)
		}
	}
	for i, p := range cfg.Scan.Exclude.Dirs {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("scan.exclude.dirs[%d] invalid pattern %q: %w", i, p, err)
		}
	}
	for i, p := range cfg.Scan.Exclude.Files {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("scan.exclude.files[%d] invalid pattern %q: %w", i, p, err)
		}
	}
	return nil
}

func validateParser(cfg *Config) error {
	switch cfg.Parser.Mode {
	case ParserModeLexical, ParserModeAST:
		return nil
	default:
		return fmt.Errorf("parser.mode must be one of: %s, %s", ParserModeLexical, ParserModeAST)
	}
}

func validateOutput(cfg *Config) error {
	if strings.TrimSpace(cfg.Output.Path) == "" {
		return fmt.Errorf("output.path must not be empty")
	}
	if cfg.Output.FreezeLevel() < 0 {
		return fmt.Errorf("output.color_freeze_level must be >= 0, got %d", cfg.Output.FreezeLevel())
	}
	return nil
}
