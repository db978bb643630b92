package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeComponent(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func runCLI(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, stderr.String()
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(data)
}

func TestRun_WritesTree(t *testing.T) {
	project := t.TempDir()
	writeComponent(t, project, "Foo.tsx", `export const Foo = () => <Bar />;`)
	out := filepath.Join(t.TempDir(), "componentsTree.mm.md")

	code, stderr := runCLI(t, project, "--output", out)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(readOutput(t, out), "## Foo\n\n- Foo\n  - Bar\n") {
		t.Fatalf("unexpected output:\n%s", readOutput(t, out))
	}
	if !strings.Contains(stderr, "wrote "+out) {
		t.Fatalf("expected summary on stderr, got %q", stderr)
	}
}

func TestRun_NoComponentFiles(t *testing.T) {
	project := t.TempDir()
	writeComponent(t, project, "index.js", "")
	out := filepath.Join(t.TempDir(), "componentsTree.mm.md")

	code, stderr := runCLI(t, project, "--output", out)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "error: no component files found\n") {
		t.Fatalf("expected the error message verbatim on stderr, got %q", stderr)
	}
	if strings.Contains(stderr, "--help") {
		t.Fatalf("runtime failures should not point at usage, got %q", stderr)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("expected no output file, stat err = %v", err)
	}
}

func TestRun_VariadicIgnoreLibs(t *testing.T) {
	project := t.TempDir()
	writeComponent(t, project, "Page.jsx", `import Button from "antd";
import { Grid } from "@mui/material";
export default () => <Grid><Button /><Card /></Grid>;`)
	out := filepath.Join(t.TempDir(), "tree.mm.md")

	code, stderr := runCLI(t, project, "--ignore-libs", "antd", "@mui/material", "--output", out)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	doc := readOutput(t, out)
	if strings.Contains(doc, "Button") || strings.Contains(doc, "Grid") {
		t.Fatalf("expected ignored library components to be dropped:\n%s", doc)
	}
	if !strings.Contains(doc, "  - Card\n") {
		t.Fatalf("expected Card to remain:\n%s", doc)
	}
}

func TestRun_ProjectOnlyAndInclude(t *testing.T) {
	project := t.TempDir()
	writeComponent(t, project, "src/A.jsx", `<B />`)
	writeComponent(t, project, "legacy/B.jsx", ``)
	out := filepath.Join(t.TempDir(), "tree.mm.md")

	code, stderr := runCLI(t, project, "--in", "src", "missing", "--project-only", "--output", out)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if strings.Contains(readOutput(t, out), "- B") {
		t.Fatalf("expected B outside --in to be filtered by --project-only:\n%s", readOutput(t, out))
	}
	if !strings.Contains(stderr, "missing") {
		t.Fatalf("expected warning for missing include, got %q", stderr)
	}
}

func TestRun_ConfigFileDiscoveryAndOverride(t *testing.T) {
	project := t.TempDir()
	writeComponent(t, project, "A.jsx", `<B />`)
	out := filepath.Join(t.TempDir(), "tree.mm.md")

	workdir := t.TempDir()
	writeComponent(t, workdir, "comptree.toml", `version = 1
directory = "`+filepath.ToSlash(project)+`"
project_only = true

[output]
path = "`+filepath.ToSlash(out)+`"
title = "Storefront"
`)
	t.Chdir(workdir)

	code, stderr := runCLI(t)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	doc := readOutput(t, out)
	if !strings.Contains(doc, "title: Storefront\n") || strings.Contains(doc, "- B") {
		t.Fatalf("expected config values to apply:\n%s", doc)
	}

	code, stderr = runCLI(t, "--project-only=false")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(readOutput(t, out), "  - B\n") {
		t.Fatalf("expected flag to override project_only:\n%s", readOutput(t, out))
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.toml")
	writeComponent(t, filepath.Dir(cfgPath), "bad.toml", "version = 7\n")

	code, stderr := runCLI(t, "--config", cfgPath)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d: %s", code, stderr)
	}
	if !strings.Contains(stderr, "error: load config: ") {
		t.Fatalf("expected config error on stderr, got %q", stderr)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := map[string][]string{
		"unknown flag":   {"--bogus"},
		"too many args":  {"a", "b"},
		"bad parser":     {".", "--parser", "regex"},
		"missing values": {".", "--in"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			code, stderr := runCLI(t, args...)
			if code != 2 {
				t.Fatalf("expected exit 2, got %d: %s", code, stderr)
			}
			if !strings.Contains(stderr, "error: ") || !strings.Contains(stderr, "comptree --help") {
				t.Fatalf("expected usage error and help hint on stderr, got %q", stderr)
			}
		})
	}
}

func TestRun_ASTParser(t *testing.T) {
	project := t.TempDir()
	writeComponent(t, project, "Form.tsx", `import { Button as Btn } from "antd";
// <Ghost /> in a comment is not a usage
export const Form = () => <Btn><Field /></Btn>;`)
	out := filepath.Join(t.TempDir(), "tree.mm.md")

	code, stderr := runCLI(t, project, "--parser", "ast", "--ignore-libs", "antd", "--output", out)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	doc := readOutput(t, out)
	if strings.Contains(doc, "Btn") || strings.Contains(doc, "Ghost") || !strings.Contains(doc, "  - Field\n") {
		t.Fatalf("unexpected ast output:\n%s", doc)
	}
}
