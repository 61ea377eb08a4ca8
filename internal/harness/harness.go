package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/arraykit/internal/arraykit"
)

// Harness executes scenario steps against a Toolkit.
type Harness struct {
	toolkit *arraykit.Toolkit
	logger  *slog.Logger
	seq     int64
}

// Run executes a scenario and returns the result with logging suppressed.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, nil)
}

// RunWithLogger executes a scenario, logging each step at debug level.
// A nil logger discards output.
//
// Execution flow:
//  1. Build a Toolkit from the scenario's rotation mode
//  2. Execute steps in order, tracing invocation and completion
//  3. Check each step's expectation
//  4. Evaluate trace assertions
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	mode, err := arraykit.ParseRotationMode(scenario.Rotation)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	h := &Harness{
		toolkit: arraykit.New(arraykit.Config{Rotation: mode}),
		logger:  logger.With("scenario", scenario.Name),
	}

	result := NewResult(scenario.Name)
	for i, step := range scenario.Steps {
		if err := h.executeStep(i, step, result); err != nil {
			return nil, fmt.Errorf("scenario %s: step %d: %w", scenario.Name, i, err)
		}
	}

	for _, msg := range EvaluateAssertions(result.Trace, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Debug("scenario finished", "pass", result.Pass, "errors", len(result.Errors))
	return result, nil
}

// nextSeq returns the next logical sequence number, starting at 1.
func (h *Harness) nextSeq() int64 {
	h.seq++
	return h.seq
}

// executeStep invokes one operation, traces it and checks its expectation.
// Operation failures are outcomes, not errors; an error return means the
// step itself is malformed.
func (h *Harness) executeStep(index int, step Step, result *Result) error {
	result.AddInvocationTrace(step.Op, stepArgs(step), h.nextSeq())

	output, opErr := h.invoke(step)

	outputCase := OutcomeOK
	var traced any
	if opErr != nil {
		var ae *arraykit.ArgumentError
		if !errors.As(opErr, &ae) {
			return opErr
		}
		outputCase = string(ae.Code)
		traced = map[string]any{"message": ae.Message, "arg": ae.Arg}
	} else {
		traced = CanonicalOutput(output)
	}
	result.AddCompletionTrace(step.Op, outputCase, traced, h.nextSeq())

	h.logger.Debug("step executed", "index", index, "op", step.Op, "case", outputCase)

	for _, msg := range checkExpect(index, step, output, opErr) {
		result.AddError(msg)
	}
	return nil
}

// invoke dispatches step to the toolkit. The output is []int for
// sequence-valued ops and arraykit.Report for count_duplicates.
func (h *Harness) invoke(step Step) (any, error) {
	switch step.Op {
	case arraykit.OpRotateLeft:
		return h.toolkit.RotateLeft(step.Input, deref(step.Positions))
	case arraykit.OpPrefixSum:
		return h.toolkit.PrefixSum(step.Input)
	case arraykit.OpCountDuplicates:
		return h.toolkit.CountDuplicates(step.Input)
	case arraykit.OpMoveElement:
		return h.toolkit.MoveElement(step.Input, deref(step.From), deref(step.To))
	case arraykit.OpSortAscending:
		return h.toolkit.SortAscending(step.Input)
	case arraykit.OpSortDescending:
		return h.toolkit.SortDescending(step.Input)
	default:
		return nil, fmt.Errorf("unknown op %q", step.Op)
	}
}

// checkExpect compares a step outcome with its expectation and returns
// one message per mismatch.
func checkExpect(index int, step Step, output any, opErr error) []string {
	prefix := fmt.Sprintf("steps[%d] %s", index, step.Op)
	e := step.Expect

	if e == nil {
		if opErr != nil {
			return []string{fmt.Sprintf("%s: unexpected error: %v", prefix, opErr)}
		}
		return nil
	}

	if e.Error != "" {
		var ae *arraykit.ArgumentError
		if !errors.As(opErr, &ae) {
			return []string{fmt.Sprintf("%s: expected error %s, got success", prefix, e.Error)}
		}
		if string(ae.Code) != e.Error {
			return []string{fmt.Sprintf("%s: expected error %s, got %s", prefix, e.Error, ae.Code)}
		}
		return nil
	}

	if opErr != nil {
		return []string{fmt.Sprintf("%s: unexpected error: %v", prefix, opErr)}
	}

	var msgs []string
	switch out := output.(type) {
	case []int:
		if !slices.Equal(e.Result, out) {
			msgs = append(msgs, fmt.Sprintf("%s: expected result %v, got %v", prefix, e.Result, out))
		}
	case arraykit.Report:
		if e.Report != nil && *e.Report != out.String() {
			msgs = append(msgs, fmt.Sprintf("%s: expected report %q, got %q", prefix, *e.Report, out.String()))
		}
		if e.Duplicates != nil && !slices.Equal(e.Duplicates, []arraykit.Duplicate(out)) {
			msgs = append(msgs, fmt.Sprintf("%s: expected duplicates %v, got %v", prefix, e.Duplicates, out))
		}
	}
	return msgs
}

// stepArgs builds the invocation args recorded in the trace.
func stepArgs(step Step) map[string]any {
	args := map[string]any{"input": slices.Clone(step.Input)}
	if step.Positions != nil {
		args["positions"] = *step.Positions
	}
	if step.From != nil {
		args["from"] = *step.From
	}
	if step.To != nil {
		args["to"] = *step.To
	}
	return args
}

// CanonicalOutput converts an operation output into values accepted by
// codec.MarshalCanonical. Sequences pass through unchanged; a Report becomes
// its duplicate list plus rendered text.
func CanonicalOutput(output any) any {
	report, ok := output.(arraykit.Report)
	if !ok {
		return output
	}
	dups := make([]any, len(report))
	for i, d := range report {
		dups[i] = map[string]any{"value": d.Value, "count": d.Count}
	}
	return map[string]any{
		"duplicates": dups,
		"report":     report.String(),
	}
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
