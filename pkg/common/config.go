package common

import "strings"

const DefaultFormat = "TEXT"

// PrintOptions control how a scenario report is written. They can be set in
// the options block of a scenario file and overridden from the command line.
type PrintOptions struct {
	Format    string `yaml:"option-format,omitempty"`
	Indent    int    `yaml:"option-indent,omitempty"`
	ShowSlots bool   `yaml:"option-show-slots,omitempty"`
}

// Normalize upper-cases the format and fills in defaults.
func (o *PrintOptions) Normalize() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	o.Format = strings.ToUpper(o.Format)
	if o.Indent <= 0 {
		o.Indent = 2
	}
}

// IndentString returns Indent spaces.
func (o *PrintOptions) IndentString() string {
	return strings.Repeat(" ", o.Indent)
}
