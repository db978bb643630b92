package parser

import (
	"comptree/internal/core/errors"
	"fmt"
	"sort"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// grammarByExtension maps component-source extensions to the grammar that
// understands their JSX dialect.
var grammarByExtension = map[string]string{
	".js":  "javascript",
	".jsx": "javascript",
	".mjs": "javascript",
	".ts":  "typescript",
	".tsx": "tsx",
}

type GrammarLoader struct {
	languages  map[string]*sitter.Language
	extensions map[string]string
}

// NewGrammarLoader loads the grammars needed for extensions. An extension
// without a known grammar is a validation error.
func NewGrammarLoader(extensions []string) (*GrammarLoader, error) {
	gl := &GrammarLoader{
		languages:  make(map[string]*sitter.Language),
		extensions: make(map[string]string),
	}
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		langID, ok := grammarByExtension[ext]
		if !ok {
			return nil, errors.New(errors.CodeValidationError, fmt.Sprintf("no syntax grammar for extension %q", ext))
		}
		gl.extensions[ext] = langID
		if _, loaded := gl.languages[langID]; loaded {
			continue
		}
		switch langID {
		case "javascript":
			gl.languages[langID] = sitter.NewLanguage(tree_sitter_javascript.Language())
		case "typescript":
			gl.languages[langID] = sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
		case "tsx":
			gl.languages[langID] = sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
		}
	}
	return gl, nil
}

// LanguageFor returns the language id and grammar for an extension.
func (gl *GrammarLoader) LanguageFor(ext string) (string, *sitter.Language, bool) {
	langID, ok := gl.extensions[strings.ToLower(ext)]
	if !ok {
		return "", nil, false
	}
	return langID, gl.languages[langID], true
}

func (gl *GrammarLoader) SupportedExtensions() []string {
	out := make([]string, 0, len(gl.extensions))
	for ext := range gl.extensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
