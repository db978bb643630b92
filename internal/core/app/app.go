package app

import (
	"comptree/internal/core/config"
	coreerrors "comptree/internal/core/errors"
	"comptree/internal/engine/graph"
	"comptree/internal/engine/parser"
	"comptree/internal/shared/observability"
	"comptree/internal/shared/util"
	"comptree/internal/ui/report/formats"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Result summarizes one run of the pipeline.
type Result struct {
	Files      int
	Components int
	Edges      int
	Roots      int
	Cycles     int
	Warnings   []string
	OutputPath string
}

type App struct {
	Config    *config.Config
	extractor parser.Extractor
	renderer  *formats.MarkmapGenerator
}

func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	extractor, err := parser.NewExtractor(cfg.Parser.Mode, cfg.Scan.Extensions)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:    cfg,
		extractor: extractor,
		renderer:  formats.NewMarkmapGenerator(),
	}, nil
}

func (a *App) Close() error {
	if a.extractor == nil {
		return nil
	}
	return a.extractor.Close()
}

// Run scans the configured directory, builds the usage graph and writes the
// markmap outline. Nothing is written when no component files are found.
func (a *App) Run(ctx context.Context) (Result, error) {
	var res Result
	cfg := a.Config

	scan, err := timeStage("collect", func() (ScanResult, error) {
		return CollectFiles(cfg.Directory, cfg.Include, ScanOptions{
			Extensions:   cfg.Scan.Extensions,
			ExcludeDirs:  cfg.Scan.Exclude.Dirs,
			ExcludeFiles: cfg.Scan.Exclude.Files,
		})
	})
	res.Warnings = scan.Warnings
	if err != nil {
		return res, err
	}
	res.Files = len(scan.Files)
	slog.Debug("collected component files", "count", res.Files, "path", cfg.Directory)

	usages, err := timeStage("extract", func() (map[string]parser.UsageSet, error) {
		return a.extractUsages(ctx, scan.Files)
	})
	if err != nil {
		return res, err
	}

	g := graph.Build(usages, cfg.ProjectOnly)
	roots := graph.Roots(g)
	cycles := graph.DetectCycles(g)
	res.Components = len(g)
	res.Edges = g.EdgeCount()
	res.Roots = len(roots)
	res.Cycles = len(cycles)

	if unresolved := g.Unresolved(); len(unresolved) > 0 {
		slog.Debug("usages without a component file", "count", len(unresolved), "component", strings.Join(unresolved, ", "))
	}
	for _, cycle := range cycles {
		slog.Debug("usage cycle", "path", strings.Join(cycle, " -> "))
	}
	if len(roots) == 0 {
		slog.Warn("no root components, every component is used by another", "count", len(cycles))
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	doc, err := timeStage("render", func() (string, error) {
		return a.renderer.Generate(formats.MarkmapTreeData{Graph: g, Roots: roots}, formats.MarkmapOptions{
			Title:            cfg.Output.Title,
			ColorFreezeLevel: cfg.Output.FreezeLevel(),
		})
	})
	if err != nil {
		return res, fmt.Errorf("render markmap: %w", err)
	}

	if err := util.WriteStringWithDirs(cfg.Output.Path, doc, 0o644); err != nil {
		return res, coreerrors.AddContext(fmt.Errorf("write output: %w", err), coreerrors.CtxPath, cfg.Output.Path)
	}
	res.OutputPath = cfg.Output.Path

	if cfg.Metrics.File != "" {
		if err := observability.WriteTextfile(cfg.Metrics.File); err != nil {
			return res, coreerrors.AddContext(fmt.Errorf("write metrics: %w", err), coreerrors.CtxPath, cfg.Metrics.File)
		}
	}

	return res, nil
}

func (a *App) extractUsages(ctx context.Context, files []string) (map[string]parser.UsageSet, error) {
	usages := make(map[string]parser.UsageSet, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil, coreerrors.AddContext(fmt.Errorf("read component file: %w", err), coreerrors.CtxPath, path)
		}

		file := parser.NewComponentFile(path)
		set, err := a.extractor.Extract(path, content, a.Config.IgnoreLibs)
		if err != nil {
			err = coreerrors.AddContext(err, coreerrors.CtxPath, path)
			err = coreerrors.AddContext(err, coreerrors.CtxComponent, file.Name)
			return nil, coreerrors.AddContext(err, coreerrors.CtxOperation, "extract usages")
		}
		if _, dup := usages[file.Name]; dup {
			slog.Debug("component name defined twice, keeping the later file", "path", path)
		}
		usages[file.Name] = set
	}
	return usages, nil
}

func timeStage[T any](stage string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	observability.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	return out, err
}
