package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arraykit/internal/arraykit"
)

func strPtr(s string) *string { return &s }

func TestRun_SampleDemoPasses(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/sample_demo.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "sample_demo", result.Scenario)
	require.Len(t, result.Trace, 12)

	for i, event := range result.Trace {
		assert.Equal(t, int64(i+1), event.Seq)
	}
	assert.Equal(t, EventInvocation, result.Trace[0].Type)
	assert.Equal(t, EventCompletion, result.Trace[1].Type)
	assert.Equal(t, OutcomeOK, result.Trace[1].OutputCase)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 1, 2, 3}, result.Trace[1].Result)
}

func TestRun_InvalidArgumentsPass(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/invalid_arguments.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)

	for _, event := range result.Trace {
		if event.Type == EventCompletion {
			assert.Equal(t, string(arraykit.ErrCodeInvalidArgument), event.OutputCase)
		}
	}
}

func TestRun_Mismatches(t *testing.T) {
	s := &Scenario{
		Name:        "mismatch",
		Description: "every expectation is wrong",
		Steps: []Step{
			{Op: arraykit.OpPrefixSum, Input: []int{1, 2}, Expect: &Expect{Result: []int{1, 2}}},
			{Op: arraykit.OpSortAscending, Input: []int{2, 1}, Expect: &Expect{Error: "INVALID_ARGUMENT"}},
			{Op: arraykit.OpSortDescending, Input: []int{}, Expect: &Expect{Result: []int{1}}},
			{Op: arraykit.OpCountDuplicates, Input: []int{1, 1}, Expect: &Expect{
				Report:     strPtr("nothing"),
				Duplicates: []arraykit.Duplicate{{Value: 2, Count: 2}},
			}},
			{Op: arraykit.OpPrefixSum, Input: []int{}},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 6)
	assert.Contains(t, result.Errors[0], "steps[0] prefix_sum: expected result [1 2], got [1 3]")
	assert.Contains(t, result.Errors[1], "expected error INVALID_ARGUMENT, got success")
	assert.Contains(t, result.Errors[2], "steps[2] sort_descending: unexpected error")
	assert.Contains(t, result.Errors[3], "expected report")
	assert.Contains(t, result.Errors[4], "expected duplicates")
	assert.Contains(t, result.Errors[5], "steps[4] prefix_sum: unexpected error")
}

func TestRun_GeneralizedRotation(t *testing.T) {
	s := &Scenario{
		Name:        "gen",
		Description: "d",
		Rotation:    "generalized",
		Steps: []Step{
			{Op: arraykit.OpRotateLeft, Input: []int{1, 2, 3}, Positions: intPtr(-1), Expect: &Expect{Result: []int{3, 1, 2}}},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(nil)
	require.Error(t, err)

	_, err = Run(&Scenario{Name: "bad", Rotation: "sideways"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rotation mode")

	_, err = Run(&Scenario{Name: "bad_op", Steps: []Step{{Op: "shuffle", Input: []int{1}}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown op "shuffle"`)
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	input := []int{3, 1, 2}
	s := &Scenario{
		Name:        "immutable",
		Description: "d",
		Steps: []Step{
			{Op: arraykit.OpSortAscending, Input: input},
			{Op: arraykit.OpMoveElement, Input: input, From: intPtr(0), To: intPtr(2)},
		},
	}

	_, err := Run(s)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, input)
}

func TestRunWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := &Scenario{
		Name:        "logged",
		Description: "d",
		Steps:       []Step{{Op: arraykit.OpPrefixSum, Input: []int{1}}},
	}

	result, err := RunWithLogger(s, logger)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.Contains(t, buf.String(), "step executed")
	assert.Contains(t, buf.String(), "scenario=logged")
	assert.Contains(t, buf.String(), "scenario finished")
}

func TestCanonicalOutput_Report(t *testing.T) {
	out := CanonicalOutput(arraykit.Report{{Value: 4, Count: 3}})
	assert.Equal(t, map[string]any{
		"duplicates": []any{map[string]any{"value": 4, "count": 3}},
		"report":     "Element 4 is duplicated 3 times.\n",
	}, out)

	assert.Equal(t, []int{1}, CanonicalOutput([]int{1}))
}
