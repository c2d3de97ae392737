package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spicery/endless-array/pkg/common"
	"gopkg.in/yaml.v3"
)

// Scenario is a YAML script of operations applied to named arrays.
type Scenario struct {
	Name    string              `yaml:"name"`
	Options common.PrintOptions `yaml:"options,omitempty"`
	Steps   []Step              `yaml:"steps"`
}

// Step is a single operation. Target defaults to DefaultTarget. Other names
// the second array for copy, equals, hashEquals and compare.
type Step struct {
	Op     string  `yaml:"op"`
	Target string  `yaml:"target,omitempty"`
	Other  string  `yaml:"other,omitempty"`
	Index  int     `yaml:"index,omitempty"`
	Value  string  `yaml:"value,omitempty"`
	Expect *string `yaml:"expect,omitempty"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sc, err := ReadScenario(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// ReadScenario decodes a scenario from r. Unknown fields are rejected.
func ReadScenario(r io.Reader) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty scenario")
		}
		return nil, err
	}
	for i, step := range sc.Steps {
		if step.Op == "" {
			return nil, fmt.Errorf("step %d has no op", i+1)
		}
	}
	return &sc, nil
}

func (s Step) target() string {
	if s.Target == "" {
		return DefaultTarget
	}
	return s.Target
}
