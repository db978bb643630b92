package parser

import (
	"comptree/internal/core/errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ASTExtractor finds usages from a tree-sitter syntax tree. Unlike the
// lexical extractor it ignores tag-like text in strings and comments, and an
// aliased import is ignored under its local name.
type ASTExtractor struct {
	loader  *GrammarLoader
	engine  *ExtractorEngine
	parsers map[string]*sitter.Parser
}

func NewASTExtractor(loader *GrammarLoader) *ASTExtractor {
	e := &ASTExtractor{
		loader:  loader,
		parsers: make(map[string]*sitter.Parser),
	}
	e.engine = NewExtractorEngine(map[string]NodeHandler{
		"jsx_opening_element":      e.extractElement,
		"jsx_self_closing_element": e.extractElement,
		"import_statement":         e.extractImport,
	})
	return e
}

func (e *ASTExtractor) Extract(path string, content []byte, ignoreLibs []string) (UsageSet, error) {
	sp, err := e.parserFor(path)
	if err != nil {
		return nil, err
	}

	tree := sp.Parse(content, nil)
	if tree == nil {
		return nil, errors.AddContext(errors.New(errors.CodeInternal, "syntax tree parse returned no tree"), errors.CtxPath, path)
	}
	defer tree.Close()

	ctx := newExtractionContext(path, content)
	e.engine.Walk(ctx, tree.RootNode())
	return ctx.Tags.Without(IgnoreSet(ctx.Bindings, ignoreLibs)), nil
}

// Close releases the cached parsers.
func (e *ASTExtractor) Close() error {
	for id, sp := range e.parsers {
		sp.Close()
		delete(e.parsers, id)
	}
	return nil
}

func (e *ASTExtractor) parserFor(path string) (*sitter.Parser, error) {
	langID, lang, ok := e.loader.LanguageFor(filepath.Ext(path))
	if !ok {
		return nil, errors.AddContext(errors.New(errors.CodeValidationError, fmt.Sprintf("no syntax grammar for file (supported: %s)", strings.Join(e.loader.SupportedExtensions(), ", "))), errors.CtxPath, path)
	}
	if sp, ok := e.parsers[langID]; ok {
		return sp, nil
	}
	sp := sitter.NewParser()
	if err := sp.SetLanguage(lang); err != nil {
		sp.Close()
		return nil, fmt.Errorf("set %s grammar: %w", langID, err)
	}
	e.parsers[langID] = sp
	return sp, nil
}

func (e *ASTExtractor) extractElement(ctx *ExtractionContext, node *sitter.Node) bool {
	name := ctx.Text(node.ChildByFieldName("name"))
	// <Layout.Header> and <svg:rect> contribute their first segment.
	if idx := strings.IndexAny(name, ".:"); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)
	if isCapitalized(name) {
		ctx.Tags.Add(name)
	}
	return false // Nested elements live in the children.
}

func (e *ASTExtractor) extractImport(ctx *ExtractionContext, node *sitter.Node) bool {
	module := strings.Trim(ctx.Text(node.ChildByFieldName("source")), `"'`)
	if module == "" {
		return true
	}
	clause := ctx.ChildOfKind(node, "import_clause")
	if clause == nil {
		return true
	}

	for i := uint(0); i < clause.ChildCount(); i++ {
		child := clause.Child(i)
		switch child.Kind() {
		case "identifier":
			e.addBinding(ctx, ctx.Text(child), module)
		case "namespace_import":
			e.addBinding(ctx, ctx.Text(ctx.ChildOfKind(child, "identifier")), module)
		case "named_imports":
			for j := uint(0); j < child.ChildCount(); j++ {
				spec := child.Child(j)
				if spec.Kind() != "import_specifier" {
					continue
				}
				local := spec.ChildByFieldName("alias")
				if local == nil {
					local = spec.ChildByFieldName("name")
				}
				e.addBinding(ctx, ctx.Text(local), module)
			}
		}
	}
	return true
}

func (e *ASTExtractor) addBinding(ctx *ExtractionContext, name, module string) {
	name = strings.TrimSpace(name)
	if !isCapitalized(name) {
		return
	}
	ctx.Bindings = append(ctx.Bindings, ImportBinding{Name: name, Module: module})
}
