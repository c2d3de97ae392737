package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/spicery/endless-array/pkg/common"
)

// PrintFunc writes a report in one output format.
type PrintFunc func(*Report, io.Writer, *common.PrintOptions) error

// PickPrintFunc returns the writer for format (TEXT, YAML or ASCIITREE).
func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case "TEXT", "":
		return PrintReportText, nil
	case "YAML":
		return PrintReportYAML, nil
	case "ASCIITREE":
		return PrintReportAsciiTree, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
