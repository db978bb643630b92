package parser

import (
	"regexp"
	"strings"
)

var (
	tagPattern = regexp.MustCompile(`<([A-Z][A-Za-z0-9_]*)`)

	// import Button from "antd"; import Layout, { Menu } from "antd"
	defaultImportPattern = regexp.MustCompile(`import\s+([A-Za-z_$][\w$]*)(?:\s*,\s*\{[^}]*\})?\s*from\s*['"]([^'"]+)['"]`)

	// import { Button, Input as TextInput } from "antd"
	namedImportPattern = regexp.MustCompile(`import\s*(?:[A-Za-z_$][\w$]*\s*,\s*)?\{([^}]*)\}\s*from\s*['"]([^'"]+)['"]`)
)

// LexicalExtractor finds usages with regular expressions over the raw text.
// It does not tell real tags from tag-like text in strings or comments, and
// for aliased named imports only the exported name is ignored, never the
// local alias.
type LexicalExtractor struct{}

func NewLexicalExtractor() *LexicalExtractor {
	return &LexicalExtractor{}
}

func (e *LexicalExtractor) Extract(_ string, content []byte, ignoreLibs []string) (UsageSet, error) {
	text := string(content)
	return TagNames(text).Without(IgnoreSet(LexicalImports(text), ignoreLibs)), nil
}

func (e *LexicalExtractor) Close() error { return nil }

// TagNames returns every capitalized identifier that follows a '<'.
func TagNames(text string) UsageSet {
	tags := make(UsageSet)
	for _, m := range tagPattern.FindAllStringSubmatch(text, -1) {
		tags.Add(m[1])
	}
	return tags
}

// LexicalImports lists the capitalized default and named import bindings in
// text. Named bindings keep the exported name with any "as" clause stripped.
func LexicalImports(text string) []ImportBinding {
	var out []ImportBinding
	for _, m := range defaultImportPattern.FindAllStringSubmatch(text, -1) {
		if isCapitalized(m[1]) {
			out = append(out, ImportBinding{Name: m[1], Module: m[2]})
		}
	}
	for _, m := range namedImportPattern.FindAllStringSubmatch(text, -1) {
		for _, item := range strings.Split(m[1], ",") {
			name := exportedName(item)
			if isCapitalized(name) {
				out = append(out, ImportBinding{Name: name, Module: m[2]})
			}
		}
	}
	return out
}

// exportedName returns the imported name of a specifier such as
// "type Props", "Button as Btn" or "Button\tas Btn".
func exportedName(item string) string {
	fields := strings.Fields(item)
	if len(fields) > 1 && fields[0] == "type" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// IgnoreSet collects the bindings whose module exactly matches an entry in
// ignoreLibs.
func IgnoreSet(bindings []ImportBinding, ignoreLibs []string) UsageSet {
	ignored := make(UsageSet)
	if len(ignoreLibs) == 0 {
		return ignored
	}
	libs := make(map[string]struct{}, len(ignoreLibs))
	for _, lib := range ignoreLibs {
		libs[lib] = struct{}{}
	}
	for _, b := range bindings {
		if _, ok := libs[b.Module]; ok {
			ignored.Add(b.Name)
		}
	}
	return ignored
}
