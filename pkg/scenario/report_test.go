package scenario

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spicery/endless-array/pkg/common"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return runSteps(
		Step{Op: "add", Value: "a"},
		Step{Op: "add", Value: "b"},
		Step{Op: "length", Expect: expect("3")},
	)
}

func defaultOptions(format string) *common.PrintOptions {
	opts := &common.PrintOptions{Format: format}
	opts.Normalize()
	return opts
}

func TestPickPrintFunc(t *testing.T) {
	for _, format := range []string{"TEXT", "text", "YAML", "AsciiTree", ""} {
		if _, err := PickPrintFunc(format); err != nil {
			t.Errorf("Expected a writer for %q, got %v", format, err)
		}
	}
	if _, err := PickPrintFunc("XML"); err == nil {
		t.Errorf("Expected error for unknown format")
	}
}

func TestPrintReportText(t *testing.T) {
	var buf bytes.Buffer
	opts := defaultOptions("TEXT")
	opts.ShowSlots = true
	if err := PrintReportText(sampleReport(), &buf, opts); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"scenario: test",
		"[a, b]",
		"FAIL (expected 3)",
		"main: length 2, cap 5 |a|b|_|_|_|",
		"3 steps, 1 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintReportYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintReportYAML(sampleReport(), &buf, defaultOptions("YAML")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded struct {
		Name     string            `yaml:"name"`
		Outcomes []Outcome         `yaml:"outcomes"`
		Failures int               `yaml:"failures"`
		Final    map[string]string `yaml:"final"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v\n%s", err, buf.String())
	}
	if decoded.Name != "test" || decoded.Failures != 1 {
		t.Errorf("Unexpected header: %+v", decoded)
	}
	if len(decoded.Outcomes) != 3 || decoded.Outcomes[2].Result != "2" {
		t.Errorf("Unexpected outcomes: %+v", decoded.Outcomes)
	}
	if decoded.Final["main"] != "[a, b]" {
		t.Errorf("Expected final main [a, b], got %s", decoded.Final["main"])
	}
}

func TestConvertToTree(t *testing.T) {
	tree := convertToTree(sampleReport())
	if tree.Label != "scenario: test" {
		t.Errorf("Unexpected root label %s", tree.Label)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("Expected one array node, got %d", len(tree.Children))
	}
	node := tree.Children[0]
	if node.Label != "main" {
		t.Errorf("Expected array label 'main', got %s", node.Label)
	}
	if len(node.Children) != 5 {
		t.Fatalf("Expected 5 slot nodes, got %d", len(node.Children))
	}
	if node.Children[1].Label != "[1] b" || node.Children[2].Label != "[2] <empty>" {
		t.Errorf("Unexpected slot labels: %s, %s", node.Children[1].Label, node.Children[2].Label)
	}
}

func TestPrintReportAsciiTree(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintReportAsciiTree(sampleReport(), &buf, defaultOptions("ASCIITREE")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"scenario: test", "main", "[0] a", "[4] <empty>", "cap: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected tree to contain %q, got:\n%s", want, out)
		}
	}
}
