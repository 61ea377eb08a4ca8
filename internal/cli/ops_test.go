package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arraykit/internal/arraykit"
	"github.com/roach88/arraykit/internal/codec"
	"github.com/roach88/arraykit/internal/harness"
)

func TestOperationCommandsText(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"rotate", []string{"rotate", "--values", "1,2,3,4,5,6,7,8,9", "--positions", "3"}, "4 5 6 7 8 9 1 2 3 \n"},
		{"rotate_wraps", []string{"rotate", "--values", "1,2,3", "--positions", "4"}, "2 3 1 \n"},
		{"rotate_generalized_zero", []string{"rotate", "--values", "1,2,3", "--positions", "0", "--rotation", "generalized"}, "1 2 3 \n"},
		{"rotate_generalized_right", []string{"rotate", "--values", "1,2,3", "--positions=-1", "--rotation", "generalized"}, "3 1 2 \n"},
		{"prefix_sum", []string{"prefix-sum", "--values", "2,4,6,8"}, "2 6 12 20 \n"},
		{"duplicates", []string{"duplicates", "--values", "1,2,3,2,4,3,5"}, "Element 2 is duplicated 2 times.\nElement 3 is duplicated 2 times.\n"},
		{"duplicates_none", []string{"duplicates", "--values", "1,2,3"}, ""},
		{"move", []string{"move", "--values", "10,20,30,40,50", "--from", "1", "--to", "3"}, "10 30 40 20 50 \n"},
		{"move_backward", []string{"move", "--values", "10,20,30,40,50", "--from", "3", "--to", "1"}, "10 40 20 30 50 \n"},
		{"sort", []string{"sort", "--values", "0,1,0,0,1,0"}, "0 0 0 0 1 1 \n"},
		{"sort_desc", []string{"sort", "--values", "0,1,0,0,1,0", "--desc"}, "1 1 0 0 0 0 \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeRoot(t, &RootOptions{}, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestOperationCommandsRejectInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
	}{
		{"rotate_zero_strict", []string{"rotate", "--values", "1,2,3", "--positions", "0"}, "Error [INVALID_ARGUMENT]: positions must be a positive integer\n"},
		{"rotate_empty", []string{"rotate", "--positions", "1"}, "Error [INVALID_ARGUMENT]: array must contain at least one element\n"},
		{"prefix_sum_empty", []string{"prefix-sum"}, "Error [INVALID_ARGUMENT]: array must contain at least one element\n"},
		{"duplicates_empty", []string{"duplicates"}, "Error [INVALID_ARGUMENT]: array must contain at least one element\n"},
		{"move_out_of_bounds", []string{"move", "--values", "1,2", "--from", "0", "--to", "2"}, "Error [INVALID_ARGUMENT]: indices must be within the bounds of the array\n"},
		{"sort_empty", []string{"sort"}, "Error [INVALID_ARGUMENT]: array must contain at least one element\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeRoot(t, &RootOptions{}, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.True(t, arraykit.IsInvalidArgument(err))
			assert.Equal(t, tt.wantOut, stdout)
		})
	}
}

func TestRotateCommandInvalidMode(t *testing.T) {
	_, _, err := executeRoot(t, &RootOptions{}, "rotate", "--values", "1", "--positions", "1", "--rotation", "loose")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid rotation mode "loose"`)
}

func TestOperationCommandJSON(t *testing.T) {
	opts := &RootOptions{TraceIDs: NewFixedGenerator("019a0000-0000-7000-8000-000000000001")}
	stdout, _, err := executeRoot(t, opts, "--format", "json", "rotate", "--values", "1,2,3", "--positions", "1")
	require.NoError(t, err)

	var resp struct {
		Status  string   `json:"status"`
		TraceID string   `json:"trace_id"`
		Data    OpResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "019a0000-0000-7000-8000-000000000001", resp.TraceID)
	assert.Equal(t, arraykit.OpRotateLeft, resp.Data.Op)
	assert.Equal(t, []int{1, 2, 3}, resp.Data.Input)
	assert.Equal(t, []any{float64(2), float64(3), float64(1)}, resp.Data.Output)

	want, err := codec.ResultDigest(arraykit.OpRotateLeft, []int{1, 2, 3}, []int{2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, want, resp.Data.Digest)
}

func TestDuplicatesCommandJSON(t *testing.T) {
	opts := &RootOptions{TraceIDs: NewFixedGenerator("t1")}
	stdout, _, err := executeRoot(t, opts, "--format", "json", "duplicates", "--values", "5,5,1")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Output DuplicatesOutput `json:"output"`
			Digest string           `json:"digest"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))

	report := arraykit.Report{{Value: 5, Count: 2}}
	assert.Equal(t, report, resp.Data.Output.Duplicates)
	assert.Equal(t, "Element 5 is duplicated 2 times.\n", resp.Data.Output.Report)

	want, err := codec.ResultDigest(arraykit.OpCountDuplicates, []int{5, 5, 1}, harness.CanonicalOutput(report))
	require.NoError(t, err)
	assert.Equal(t, want, resp.Data.Digest)
}

func TestOperationCommandJSONError(t *testing.T) {
	opts := &RootOptions{TraceIDs: NewFixedGenerator("t-err")}
	stdout, _, err := executeRoot(t, opts, "--format", "json", "move", "--values", "1,2", "--from=-1", "--to", "0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "t-err", resp.TraceID)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_ARGUMENT", resp.Error.Code)
	assert.Equal(t, map[string]any{"op": "move_element", "arg": "from"}, resp.Error.Details)
}

func TestDigestIsDeterministic(t *testing.T) {
	var digests []string
	for range 3 {
		stdout, _, err := executeRoot(t, &RootOptions{TraceIDs: NewFixedGenerator("t")}, "--format", "json", "sort", "--values", "3,1,2")
		require.NoError(t, err)

		var resp struct {
			Data OpResult `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
		digests = append(digests, resp.Data.Digest)
	}

	assert.Len(t, digests[0], 64)
	assert.Equal(t, digests[0], digests[1])
	assert.Equal(t, digests[1], digests[2])
}

func TestFormatSequence(t *testing.T) {
	assert.Equal(t, "\n", FormatSequence(nil))
	assert.Equal(t, "7 \n", FormatSequence([]int{7}))
	assert.Equal(t, "-1 0 1 \n", FormatSequence([]int{-1, 0, 1}))
}
