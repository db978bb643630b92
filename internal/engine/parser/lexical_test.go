package parser

import (
	"reflect"
	"testing"
)

func extractLexical(t *testing.T, source string, ignore ...string) UsageSet {
	t.Helper()
	usages, err := NewLexicalExtractor().Extract("Component.tsx", []byte(source), ignore)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	return usages
}

func TestLexical_TagUsage(t *testing.T) {
	usages := extractLexical(t, `
export default function Foo() {
  return <div><Bar /></div>;
}
`)
	if !usages.Has("Bar") {
		t.Fatalf("expected Bar in usages, got %v", usages.Sorted())
	}
	if usages.Has("div") {
		t.Fatal("lowercase intrinsic elements must not be reported")
	}
}

func TestLexical_DefaultImportIgnored(t *testing.T) {
	usages := extractLexical(t, `
import Button from "antd";
import Card from "./Card";

export const Foo = () => <Card><Button/></Card>;
`, "antd")

	if usages.Has("Button") {
		t.Fatal("expected Button from ignored lib to be removed")
	}
	if !usages.Has("Card") {
		t.Fatal("expected Card from a local module to be kept")
	}
}

func TestLexical_NamedImportIgnored(t *testing.T) {
	usages := extractLexical(t, `
import {
  Button,
  Input,
  message,
} from 'antd';

const Form = () => <><Input /><Button>ok</Button></>;
`, "antd")

	if len(usages) != 0 {
		t.Fatalf("expected every antd usage to be removed, got %v", usages.Sorted())
	}
}

func TestLexical_AliasedNamedImportNotIgnored(t *testing.T) {
	usages := extractLexical(t, `
import { Button as Btn } from "antd";

export const Foo = () => <Btn/>;
`, "antd")

	if !usages.Has("Btn") {
		t.Fatalf("aliased usage must survive the ignore rule, got %v", usages.Sorted())
	}
}

func TestLexical_IgnoreRequiresExactModuleMatch(t *testing.T) {
	usages := extractLexical(t, `
import Button from "antd/es/button";
export const Foo = () => <Button/>;
`, "antd")

	if !usages.Has("Button") {
		t.Fatal("sub-path imports must not match the ignore entry")
	}
}

func TestLexical_IgnoreOnlyWhenRequested(t *testing.T) {
	usages := extractLexical(t, `
import Button from "antd";
export const Foo = () => <Button/>;
`)
	if !usages.Has("Button") {
		t.Fatal("without an ignore list every tag is a usage")
	}
}

func TestLexical_MatchesTagLikeTextInStrings(t *testing.T) {
	usages := extractLexical(t, `const help = "wrap it in <Provider>"; // or <Context>`)
	want := []string{"Context", "Provider"}
	if got := usages.Sorted(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestLexicalImports(t *testing.T) {
	bindings := LexicalImports(`
import React, { Component, useState } from 'react';
import styled from "styled-components";
import { Table as DataTable, type ColumnProps } from "antd";
`)
	want := []ImportBinding{
		{Name: "React", Module: "react"},
		{Name: "Component", Module: "react"},
		{Name: "Table", Module: "antd"},
		{Name: "ColumnProps", Module: "antd"},
	}
	if !reflect.DeepEqual(bindings, want) {
		t.Fatalf("expected %v, got %v", want, bindings)
	}
}

func TestIgnoreSet(t *testing.T) {
	bindings := []ImportBinding{
		{Name: "Button", Module: "antd"},
		{Name: "Grid", Module: "@mui/material"},
		{Name: "Card", Module: "./Card"},
	}
	got := IgnoreSet(bindings, []string{"antd", "@mui/material"}).Sorted()
	want := []string{"Button", "Grid"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExportedName(t *testing.T) {
	cases := map[string]string{
		" Button ":          "Button",
		"Button as Btn":     "Button",
		"Button\tas Btn":    "Button",
		"Button\n  as\tBtn": "Button",
		"type ColumnProps":  "ColumnProps",
		"type\tProps as P":  "Props",
		"type":              "type",
		"   ":               "",
	}
	for in, want := range cases {
		if got := exportedName(in); got != want {
			t.Errorf("exportedName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLexicalImports_AliasSeparatedByTabs(t *testing.T) {
	bindings := LexicalImports("import {\n\tButton\tas Btn,\n\tGrid\n} from \"antd\";")
	want := []ImportBinding{{Name: "Button", Module: "antd"}, {Name: "Grid", Module: "antd"}}
	if !reflect.DeepEqual(bindings, want) {
		t.Fatalf("expected %v, got %v", want, bindings)
	}
}
