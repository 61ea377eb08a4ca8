package harness

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/arraykit/internal/arraykit"
)

// Scenario defines a conformance test scenario: a list of operation steps
// with expected outcomes, plus optional assertions over the whole trace.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Rotation selects the rotate_left validation mode ("strict" if empty).
	Rotation string `yaml:"rotation,omitempty" json:"rotation,omitempty"`

	// Steps are executed in order. At least one is required.
	Steps []Step `yaml:"steps" json:"steps"`

	// Assertions validate the final trace.
	Assertions []Assertion `yaml:"assertions,omitempty" json:"assertions,omitempty"`
}

// Step invokes one operation.
type Step struct {
	// Op is the operation name (e.g. "rotate_left"), see arraykit.Operations.
	Op string `yaml:"op" json:"op"`

	// Input is the sequence passed to the operation. Use [] for empty.
	Input []int `yaml:"input" json:"input"`

	// Positions is required by rotate_left.
	Positions *int `yaml:"positions,omitempty" json:"positions,omitempty"`

	// From and To are required by move_element.
	From *int `yaml:"from,omitempty" json:"from,omitempty"`
	To   *int `yaml:"to,omitempty" json:"to,omitempty"`

	// Expect specifies the expected outcome.
	// If nil, the step only has to succeed.
	Expect *Expect `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Expect specifies expected step behavior. Error excludes the other fields.
type Expect struct {
	// Result is the expected output sequence (sequence-valued ops).
	Result []int `yaml:"result,omitempty" json:"result,omitempty"`

	// Report is the expected rendered duplicate report (count_duplicates).
	Report *string `yaml:"report,omitempty" json:"report,omitempty"`

	// Duplicates is the expected duplicate list in order (count_duplicates).
	Duplicates []arraykit.Duplicate `yaml:"duplicates,omitempty" json:"duplicates,omitempty"`

	// Error is the expected error code, e.g. "INVALID_ARGUMENT".
	Error string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Assertion validates the trace as a whole.
type Assertion struct {
	// Type is one of trace_contains, trace_order, trace_count.
	Type string `yaml:"type" json:"type"`

	// Op is used by trace_contains and trace_count.
	Op string `yaml:"op,omitempty" json:"op,omitempty"`

	// Case optionally restricts trace_contains to a completion outcome
	// ("ok" or an error code).
	Case string `yaml:"case,omitempty" json:"case,omitempty"`

	// Count is the expected number of invocations (trace_count).
	Count int `yaml:"count,omitempty" json:"count,omitempty"`

	// Ops is the expected order (trace_order).
	Ops []string `yaml:"ops,omitempty" json:"ops,omitempty"`
}

// Assertion type constants.
const (
	AssertTraceContains = "trace_contains"
	AssertTraceOrder    = "trace_order"
	AssertTraceCount    = "trace_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or fails validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScenario decodes and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "expects:" vs "expect:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	if err := validateSchema(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// ErrNoScenarios is returned by LoadDir for a directory without scenario files.
var ErrNoScenarios = errors.New("no scenario files found")

// LoadedScenario is one file read by LoadDir. Err is set, and Scenario is
// nil, when the file could not be parsed or validated.
type LoadedScenario struct {
	Path     string
	Scenario *Scenario
	Err      error
}

// Name returns the scenario name, or the file name when loading failed.
func (l LoadedScenario) Name() string {
	if l.Scenario != nil {
		return l.Scenario.Name
	}
	return filepath.Base(l.Path)
}

// LoadDir loads every *.yaml / *.yml scenario in dir, ordered by file name.
// Subdirectories are not searched. A file that fails to load is reported in
// its entry; the returned error covers only the directory itself.
func LoadDir(dir string) ([]LoadedScenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var loaded []LoadedScenario
	for _, entry := range entries {
		if entry.IsDir() || !IsScenarioFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		s, err := LoadScenario(path)
		loaded = append(loaded, LoadedScenario{Path: path, Scenario: s, Err: err})
	}

	if len(loaded) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoScenarios, dir)
	}
	return loaded, nil
}

// IsScenarioFile reports whether name has a scenario file extension.
func IsScenarioFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

// validateScenario checks required fields and per-op arguments.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, err := arraykit.ParseRotationMode(s.Rotation); err != nil {
		return err
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

func validateStep(index int, st *Step) error {
	if st.Op == "" {
		return fmt.Errorf("steps[%d]: op is required", index)
	}
	if !slices.Contains(arraykit.Operations, st.Op) {
		return fmt.Errorf("steps[%d]: unknown op %q", index, st.Op)
	}
	if st.Input == nil {
		return fmt.Errorf("steps[%d]: input is required (use [] for an empty sequence)", index)
	}

	switch st.Op {
	case arraykit.OpRotateLeft:
		if st.Positions == nil {
			return fmt.Errorf("steps[%d]: positions is required for %s", index, st.Op)
		}
	case arraykit.OpMoveElement:
		if st.From == nil || st.To == nil {
			return fmt.Errorf("steps[%d]: from and to are required for %s", index, st.Op)
		}
	}
	if st.Positions != nil && st.Op != arraykit.OpRotateLeft {
		return fmt.Errorf("steps[%d]: positions is only valid for %s", index, arraykit.OpRotateLeft)
	}
	if (st.From != nil || st.To != nil) && st.Op != arraykit.OpMoveElement {
		return fmt.Errorf("steps[%d]: from/to are only valid for %s", index, arraykit.OpMoveElement)
	}

	if st.Expect == nil {
		return nil
	}
	e := st.Expect
	if e.Error != "" {
		if e.Result != nil || e.Report != nil || e.Duplicates != nil {
			return fmt.Errorf("steps[%d].expect: error excludes result, report and duplicates", index)
		}
		return nil
	}
	if st.Op == arraykit.OpCountDuplicates {
		if e.Result != nil {
			return fmt.Errorf("steps[%d].expect: %s expects report or duplicates, not result", index, st.Op)
		}
		if e.Report == nil && e.Duplicates == nil {
			return fmt.Errorf("steps[%d].expect: report or duplicates is required", index)
		}
		return nil
	}
	if e.Report != nil || e.Duplicates != nil {
		return fmt.Errorf("steps[%d].expect: report and duplicates are only valid for %s", index, arraykit.OpCountDuplicates)
	}
	if e.Result == nil {
		return fmt.Errorf("steps[%d].expect: result or error is required", index)
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertTraceContains:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_contains", index)
		}
	case AssertTraceOrder:
		if len(a.Ops) == 0 {
			return fmt.Errorf("assertions[%d]: ops list is required for trace_order", index)
		}
	case AssertTraceCount:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for trace_count", index)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for trace_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
