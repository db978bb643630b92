package parser

import (
	"comptree/internal/core/errors"
	"fmt"
)

const (
	ModeLexical = "lexical"
	ModeAST     = "ast"
)

// Extractor produces the usage set of one component file: capitalized tag
// names minus names imported from an ignored library.
type Extractor interface {
	Extract(path string, content []byte, ignoreLibs []string) (UsageSet, error)
	Close() error
}

// NewExtractor returns the extractor for mode. extensions are only consulted
// by the syntax-tree extractor, which needs a grammar for each of them.
func NewExtractor(mode string, extensions []string) (Extractor, error) {
	switch mode {
	case "", ModeLexical:
		return NewLexicalExtractor(), nil
	case ModeAST:
		loader, err := NewGrammarLoader(extensions)
		if err != nil {
			return nil, err
		}
		return NewASTExtractor(loader), nil
	default:
		return nil, errors.New(errors.CodeValidationError, fmt.Sprintf("unknown parser mode %q", mode))
	}
}
