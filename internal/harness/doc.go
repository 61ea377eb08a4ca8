// Package harness provides conformance testing for arraykit operations.
//
// The harness loads scenarios, executes each step against an
// arraykit.Toolkit, checks the outcome against the step's expectation, and
// records a deterministic trace suitable for golden snapshot comparison.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	rotation: strict            # optional: strict | generalized
//	steps:
//	  - op: rotate_left
//	    input: [1, 2, 3, 4]
//	    positions: 1
//	    expect:
//	      result: [2, 3, 4, 1]
//	  - op: count_duplicates
//	    input: [1, 2, 2]
//	    expect:
//	      duplicates: [{value: 2, count: 2}]
//	      report: "Element 2 is duplicated 2 times.\n"
//	  - op: prefix_sum
//	    input: []
//	    expect:
//	      error: INVALID_ARGUMENT
//	assertions:
//	  - type: trace_count
//	    op: rotate_left
//	    count: 1
//
// Files are decoded strictly (unknown fields are errors) and then checked
// against an embedded CUE schema (schema.cue).
//
// # Assertion Types
//
//   - trace_contains: an op appears in the trace, optionally with a given outcome
//   - trace_order: ops appear in the specified order
//   - trace_count: an op appears exactly N times
//
// # Deterministic Testing
//
// Each step produces an invocation and a completion event with sequence
// numbers from a fresh logical counter, so identical scenarios produce
// byte-identical canonical traces.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/sample.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
