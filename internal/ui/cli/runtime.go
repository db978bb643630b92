package cli

import (
	"comptree/internal/core/app"
	"comptree/internal/core/config"
	coreerrors "comptree/internal/core/errors"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Run executes comptree with args (without the program name) and returns the
// process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts cliOptions
	cmd := newRootCommand(&opts, func(cmd *cobra.Command, args []string) error {
		return runScan(cmd, args, &opts, stderr)
	})
	cmd.SetArgs(expandVariadicFlags(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := fang.Execute(ctx, cmd,
		fang.WithVersion(versionString),
		fang.WithErrorHandler(printError),
		fang.WithoutManpage(),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err == nil {
		return exitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitUsage
}

func runScan(cmd *cobra.Command, args []string, opts *cliOptions, stderr io.Writer) error {
	configureLogging(opts.verbose, stderr)

	if cmd.Flags().Changed("parser") && opts.parserMode != config.ParserModeLexical && opts.parserMode != config.ParserModeAST {
		return fmt.Errorf("invalid --parser %q: want %s or %s", opts.parserMode, config.ParserModeLexical, config.ParserModeAST)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return failure(fmt.Errorf("detect working directory: %w", err))
	}

	cfg, cfgPath, err := loadConfig(opts.configPath, cwd)
	if err != nil {
		return failure(fmt.Errorf("load config: %w", err))
	}
	if cfgPath != "" {
		slog.Debug("loaded config", "path", cfgPath)
	}

	applyOverrides(cmd.Flags(), cfg, opts, args)
	if err := config.Finalize(cfg); err != nil {
		return failure(fmt.Errorf("invalid configuration: %w", err))
	}
	slog.Debug("starting scan", "path", cfg.Directory, "mode", cfg.Parser.Mode)

	application, err := app.New(cfg)
	if err != nil {
		return failure(err)
	}
	defer func() {
		if closeErr := application.Close(); closeErr != nil {
			slog.Warn("failed to release parser", "error", closeErr)
		}
	}()

	res, err := application.Run(cmd.Context())
	if err != nil {
		slog.Debug("scan failed", "code", coreerrors.CodeOf(err), "error", err)
		if coreerrors.IsCode(err, coreerrors.CodeNoInput) {
			return failure(errors.New("no component files found"))
		}
		return failure(err)
	}

	fmt.Fprintln(stderr, summaryLine(res))
	return nil
}

// loadConfig reads the config file named by --config, or comptree.toml in the
// working directory when it exists. Without either, defaults are used.
func loadConfig(path, cwd string) (*config.Config, string, error) {
	if path == "" {
		candidate := filepath.Join(cwd, config.DefaultConfigFile)
		if _, err := os.Stat(candidate); err != nil {
			return config.DefaultConfig(), "", nil
		}
		path = candidate
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, coreerrors.AddContext(err, coreerrors.CtxPath, path)
	}
	return cfg, path, nil
}

// applyOverrides copies explicitly set flags and the directory argument over
// the loaded configuration.
func applyOverrides(flags *pflag.FlagSet, cfg *config.Config, opts *cliOptions, args []string) {
	if len(args) > 0 {
		cfg.Directory = args[0]
	}
	if flags.Changed("ignore-libs") {
		cfg.IgnoreLibs = opts.ignoreLibs
	}
	if flags.Changed("in") {
		cfg.Include = opts.include
	}
	if flags.Changed("project-only") {
		cfg.ProjectOnly = opts.projectOnly
	}
	if flags.Changed("parser") {
		cfg.Parser.Mode = opts.parserMode
	}
	if flags.Changed("output") {
		cfg.Output.Path = opts.outputPath
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = opts.metricsFile
	}
}

func configureLogging(verbose bool, w io.Writer) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "comptree",
	})
	slog.SetDefault(slog.New(logger))
}
