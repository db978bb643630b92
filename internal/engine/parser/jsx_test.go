package parser

import (
	"reflect"
	"testing"
)

func newTestASTExtractor(t *testing.T) Extractor {
	t.Helper()
	e, err := NewExtractor(ModeAST, []string{".jsx", ".tsx"})
	if err != nil {
		t.Fatalf("new extractor: %v", err)
	}
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestASTExtractor_TSXUsages(t *testing.T) {
	e := newTestASTExtractor(t)
	source := `
import { Button as Btn } from "antd";
import Layout from "antd";
import Card from "./Card";

type Props = { title: string };

export default function Page({ title }: Props) {
  const hint = "<NotAComponent>";
  // <AlsoNotAComponent />
  return (
    <Layout.Content>
      <Card title={title}>
        <Btn />
      </Card>
    </Layout.Content>
  );
}
`
	usages, err := e.Extract("Page.tsx", []byte(source), []string{"antd"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"Card"}
	if got := usages.Sorted(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestASTExtractor_JSXUsages(t *testing.T) {
	e := newTestASTExtractor(t)
	source := `
import * as Icons from "icons";
export const Nav = () => (
  <nav>
    <Link to="/"><Icons.Home /></Link>
    <Menu />
  </nav>
);
`
	usages, err := e.Extract("Nav.jsx", []byte(source), []string{"icons"})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []string{"Link", "Menu"}
	if got := usages.Sorted(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNewExtractor_RejectsUnknownMode(t *testing.T) {
	if _, err := NewExtractor("babel", nil); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestNewExtractor_ASTRejectsExtensionWithoutGrammar(t *testing.T) {
	if _, err := NewExtractor(ModeAST, []string{".vue"}); err == nil {
		t.Fatal("expected error for extension without grammar")
	}
}

func TestGrammarLoader_SupportedExtensions(t *testing.T) {
	gl, err := NewGrammarLoader([]string{".TSX", ".jsx"})
	if err != nil {
		t.Fatalf("loader: %v", err)
	}
	want := []string{".jsx", ".tsx"}
	if got := gl.SupportedExtensions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
