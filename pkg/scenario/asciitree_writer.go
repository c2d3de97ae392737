package scenario

import (
	"fmt"
	"io"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/spicery/endless-array/pkg/common"
)

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// convertToTree lays out each array with one child per physical slot.
func convertToTree(report *Report) AsciiNode {
	root := AsciiNode{
		Label: fmt.Sprintf("scenario: %s", report.Name),
		Props: []string{
			fmt.Sprintf("steps: %d", report.Outcomes.Len()),
			fmt.Sprintf("failures: %d", report.Failures),
		},
	}
	for _, na := range report.Arrays() {
		node := AsciiNode{
			Label: na.Name,
			Props: []string{
				fmt.Sprintf("length: %d", na.Length()),
				fmt.Sprintf("cap: %d", na.Cap()),
				fmt.Sprintf("capacity: %d", na.Capacity()),
			},
		}
		for i := 0; i < na.Cap(); i++ {
			slot := na.Slot(i)
			label := fmt.Sprintf("[%d] <empty>", i)
			if slot.Ok {
				label = fmt.Sprintf("[%d] %s", i, slot.Value)
			}
			node.Children = append(node.Children, AsciiNode{Label: label})
		}
		root.Children = append(root.Children, node)
	}
	return root
}

func PrintReportAsciiTree(report *Report, output io.Writer, options *common.PrintOptions) error {
	_, err := fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(report)))
	return err
}
