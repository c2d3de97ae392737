package common

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestListAdd(t *testing.T) {
	var l List[string]
	if l.Len() != 0 {
		t.Errorf("Expected empty list, got %d items", l.Len())
	}
	l.Add("a")
	l.Add("b")
	if l.Len() != 2 {
		t.Errorf("Expected 2 items, got %d", l.Len())
	}
	if got := l.Items(); got[0] != "a" || got[1] != "b" {
		t.Errorf("Expected [a b], got %v", got)
	}
}

func TestListMarshalYAML(t *testing.T) {
	var l List[int]
	out, err := yaml.Marshal(struct {
		Items List[int] `yaml:"items"`
	}{l})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "items: []") {
		t.Errorf("Expected empty sequence, got %q", out)
	}

	l.Add(1)
	l.Add(2)
	out, err = yaml.Marshal(l)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(out) != "- 1\n- 2\n" {
		t.Errorf("Expected a plain sequence, got %q", out)
	}
}

func TestPrintOptionsNormalize(t *testing.T) {
	tests := []struct {
		name       string
		in         PrintOptions
		wantFormat string
		wantIndent string
	}{
		{name: "defaults", in: PrintOptions{}, wantFormat: "TEXT", wantIndent: "  "},
		{name: "lower case format", in: PrintOptions{Format: "yaml"}, wantFormat: "YAML", wantIndent: "  "},
		{name: "custom indent", in: PrintOptions{Format: "AsciiTree", Indent: 4}, wantFormat: "ASCIITREE", wantIndent: "    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.in
			opts.Normalize()
			if opts.Format != tt.wantFormat {
				t.Errorf("Expected format %s, got %s", tt.wantFormat, opts.Format)
			}
			if opts.IndentString() != tt.wantIndent {
				t.Errorf("Expected indent %q, got %q", tt.wantIndent, opts.IndentString())
			}
		})
	}
}
