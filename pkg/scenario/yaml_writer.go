package scenario

import (
	"io"

	"github.com/spicery/endless-array/pkg/common"
	"gopkg.in/yaml.v3"
)

func PrintReportYAML(report *Report, output io.Writer, options *common.PrintOptions) error {
	encoder := yaml.NewEncoder(output)
	if options.Indent > 0 {
		encoder.SetIndent(options.Indent)
	}
	if err := encoder.Encode(report); err != nil {
		return err
	}
	return encoder.Close()
}
