package cli

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arraykit/internal/arraykit"
)

func TestDemoGolden(t *testing.T) {
	stdout, stderr, err := executeRoot(t, &RootOptions{}, "demo")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "demo", []byte(stdout))
}

func TestDemoJSON(t *testing.T) {
	opts := &RootOptions{TraceIDs: NewFixedGenerator("demo-trace")}
	stdout, _, err := executeRoot(t, opts, "--format", "json", "demo")
	require.NoError(t, err)

	var resp struct {
		Status  string     `json:"status"`
		TraceID string     `json:"trace_id"`
		Data    []OpResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "demo-trace", resp.TraceID)
	require.Len(t, resp.Data, len(arraykit.Operations))
	for i, op := range arraykit.Operations {
		assert.Equal(t, op, resp.Data[i].Op)
		assert.Len(t, resp.Data[i].Digest, 64)
	}
	assert.Equal(t, []int{10, 20, 30, 40, 50}, resp.Data[3].Input)
}

func TestDemoDoesNotMutateSamples(t *testing.T) {
	before := demoCases()
	for _, c := range before {
		_, err := c.run(c.input)
		require.NoError(t, err)
	}
	assert.Equal(t, demoCases()[0].input, before[0].input)
	assert.Equal(t, []int{0, 1, 0, 0, 1, 0}, before[4].input)
}

func TestDemoRejectsArgs(t *testing.T) {
	_, _, err := executeRoot(t, &RootOptions{}, "demo", "extra")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
