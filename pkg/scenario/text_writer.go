package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/spicery/endless-array/pkg/common"
)

// PrintReportText writes one line per step followed by a summary.
func PrintReportText(report *Report, output io.Writer, options *common.PrintOptions) error {
	indent := options.IndentString()
	if _, err := fmt.Fprintf(output, "scenario: %s\n", report.Name); err != nil {
		return err
	}
	for i, o := range report.Outcomes.Items() {
		status := "ok"
		if !o.Passed {
			status = fmt.Sprintf("FAIL (expected %s)", o.Expect)
		}
		if _, err := fmt.Fprintf(output, "%s%3d %-10s %-6s -> %s  %s  %s\n", indent, i+1, o.Op, o.Target, o.Result, o.Snapshot, status); err != nil {
			return err
		}
	}
	if options.ShowSlots {
		for _, na := range report.Arrays() {
			if _, err := fmt.Fprintf(output, "%s%s: %s\n", indent, na.Name, slotLine(na)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(output, "%d steps, %d failed\n", report.Outcomes.Len(), report.Failures)
	return err
}

// slotLine shows every physical slot, with _ for empty ones.
func slotLine(na NamedArray) string {
	slots := make([]string, na.Cap())
	for i := range slots {
		slot := na.Slot(i)
		if slot.Ok {
			slots[i] = slot.Value
		} else {
			slots[i] = "_"
		}
	}
	return fmt.Sprintf("length %d, cap %d |%s|", na.Length(), na.Cap(), strings.Join(slots, "|"))
}
