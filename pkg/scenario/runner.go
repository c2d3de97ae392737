package scenario

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spicery/endless-array/pkg/common"
	"github.com/spicery/endless-array/pkg/endless"
)

// DefaultTarget is the array every run starts with.
const DefaultTarget = "main"

var (
	ErrUnknownOp     = errors.New("unknown op")
	ErrUnknownTarget = errors.New("unknown target")
)

// Outcome records what one step did.
type Outcome struct {
	Op       string `yaml:"op"`
	Target   string `yaml:"target"`
	Result   string `yaml:"result"`
	Expect   string `yaml:"expect,omitempty"`
	Passed   bool   `yaml:"passed"`
	Snapshot string `yaml:"snapshot"`
}

// Report is the result of running a scenario.
type Report struct {
	Name     string               `yaml:"name"`
	Outcomes common.List[Outcome] `yaml:"outcomes"`
	Failures int                  `yaml:"failures"`
	Final    map[string]string    `yaml:"final"`

	arrays []NamedArray
}

// NamedArray pairs an array with its scenario name.
type NamedArray struct {
	Name string
	*endless.Array[string]
}

// Arrays returns the arrays left at the end of the run, in creation order.
func (r *Report) Arrays() []NamedArray {
	return r.arrays
}

// Runner applies scenario steps to a set of named string arrays.
type Runner struct {
	arrays map[string]*endless.Array[string]
	names  []string
}

func NewRunner() *Runner {
	r := &Runner{arrays: map[string]*endless.Array[string]{}}
	r.put(DefaultTarget, endless.New[string]())
	return r
}

// Run applies every step in order. A failing operation does not stop the
// run; its error kind becomes the step result.
func (r *Runner) Run(sc *Scenario) *Report {
	report := &Report{Name: sc.Name, Final: map[string]string{}}
	for _, step := range sc.Steps {
		result, err := r.apply(step)
		if err != nil {
			result = "error:" + errorKind(err)
		}
		outcome := Outcome{
			Op:     step.Op,
			Target: step.target(),
			Result: result,
			Passed: true,
		}
		if step.Expect != nil {
			outcome.Expect = *step.Expect
			outcome.Passed = *step.Expect == result
		}
		if arr, ok := r.arrays[step.target()]; ok {
			outcome.Snapshot = arr.String()
		}
		if !outcome.Passed {
			report.Failures++
		}
		report.Outcomes.Add(outcome)
	}
	for _, name := range r.names {
		arr := r.arrays[name]
		report.Final[name] = arr.String()
		report.arrays = append(report.arrays, NamedArray{Name: name, Array: arr})
	}
	return report
}

func (r *Runner) put(name string, arr *endless.Array[string]) {
	if _, ok := r.arrays[name]; !ok {
		r.names = append(r.names, name)
	}
	r.arrays[name] = arr
}

func (r *Runner) lookup(name string) (*endless.Array[string], error) {
	arr, ok := r.arrays[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	return arr, nil
}

func (r *Runner) apply(step Step) (string, error) {
	if step.Op == "new" {
		r.put(step.target(), endless.New[string]())
		return "ok", nil
	}
	if step.Op == "rank" {
		return r.rank(), nil
	}

	arr, err := r.lookup(step.target())
	if err != nil {
		return "", err
	}

	switch step.Op {
	case "add":
		return okOr(arr.Add(step.Value))
	case "addTo":
		return okOr(arr.AddTo(step.Index, step.Value))
	case "set":
		return okOr(arr.Set(step.Index, step.Value))
	case "deleteFrom":
		return okOr(arr.DeleteFrom(step.Index))
	case "get":
		return arr.Get(step.Index)
	case "removeFrom":
		return arr.RemoveFrom(step.Index)
	case "remove":
		return strconv.FormatBool(arr.Remove(step.Value)), nil
	case "delete":
		arr.Delete(step.Value)
		return "ok", nil
	case "indexOf":
		return strconv.Itoa(arr.IndexOf(step.Value)), nil
	case "contains":
		return strconv.FormatBool(arr.Contains(step.Value)), nil
	case "clear":
		arr.Clear()
		return "ok", nil
	case "length":
		return strconv.Itoa(arr.Length()), nil
	case "isEmpty":
		return strconv.FormatBool(arr.IsEmpty()), nil
	case "capacity":
		return strconv.Itoa(arr.Capacity()), nil
	case "cap":
		return strconv.Itoa(arr.Cap()), nil
	case "toArray":
		return fmt.Sprintf("%q", arr.ToArray()), nil
	case "string":
		return arr.String(), nil
	case "iterate":
		return walk(arr.Iterator())
	case "zigzag":
		return walk(arr.Zigzag())
	case "copy":
		if step.Other == "" {
			return "", fmt.Errorf("%w: copy needs other", ErrUnknownTarget)
		}
		c := arr.Copy()
		r.put(step.Other, c)
		return c.String(), nil
	}

	other, err := r.lookup(step.Other)
	if err != nil {
		if isPairOp(step.Op) {
			return "", err
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	switch step.Op {
	case "equals":
		return strconv.FormatBool(arr.Equals(other)), nil
	case "hashEquals":
		return strconv.FormatBool(arr.HashCode() == other.HashCode()), nil
	case "compare":
		return strconv.Itoa(arr.CompareTo(other)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
}

// rank lists every array as name:length, shortest first. Arrays of equal
// length come out in no particular order.
func (r *Runner) rank() string {
	ranked := make([]endless.Lengther, 0, len(r.names))
	for _, name := range r.names {
		ranked = append(ranked, NamedArray{Name: name, Array: r.arrays[name]})
	}
	endless.SortByLength(ranked)
	parts := make([]string, len(ranked))
	for i, l := range ranked {
		na := l.(NamedArray)
		parts[i] = fmt.Sprintf("%s:%d", na.Name, na.Length())
	}
	return strings.Join(parts, " ")
}

func isPairOp(op string) bool {
	switch op {
	case "equals", "hashEquals", "compare":
		return true
	}
	return false
}

func okOr(err error) (string, error) {
	if err != nil {
		return "", err
	}
	return "ok", nil
}

type iterator interface {
	HasNext() bool
	Next() (string, error)
}

func walk(it iterator) (string, error) {
	var seen []string
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return "", err
		}
		seen = append(seen, v)
	}
	return strings.Join(seen, ", "), nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrUnknownOp):
		return "UnknownOp"
	case errors.Is(err, ErrUnknownTarget):
		return "UnknownTarget"
	}
	if kind := endless.ErrorKind(err); kind != "" {
		return kind
	}
	return "Unknown"
}
