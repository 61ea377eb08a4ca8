package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/arraykit/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Golden bool     `json:"golden"` // trace was compared against (or written to) a golden file
	Digest string   `json:"digest,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
	Malformed int              `json:"malformed,omitempty"` // scenarios that failed to load
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <dir|file>",
		Short: "Run scenario files against the toolkit",
		Long: `Run YAML scenario files against the toolkit.

A directory argument runs every *.yaml / *.yml file directly inside it;
subdirectories are not searched. Each step's expectation and every trace
assertion is checked. Golden traces live in a "golden" directory next to
the scenario directory, named after the scenario:

  testdata/scenarios/rotate.yaml  ->  testdata/golden/<name>.golden

When a golden file exists the canonical trace must match it byte for byte.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, malformed scenario, etc.)

Examples:
  arraykit check ./testdata/scenarios
  arraykit check ./testdata/scenarios/rotate.yaml
  arraykit check ./testdata/scenarios --filter "rotate*"
  arraykit check ./testdata/scenarios --update`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios in a directory by glob pattern on the file name")

	return cmd
}

func runCheck(opts *CheckOptions, target string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	info, err := os.Stat(target)
	if os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenario path not found: %s", target))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to stat scenario path", err)
	}

	var loaded []harness.LoadedScenario
	if info.IsDir() {
		loaded, err = loadScenarioDir(target, opts.Filter)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to find scenarios", err)
		}
	} else {
		if opts.Filter != "" {
			return NewExitError(ExitCommandError, "--filter applies only to a scenario directory")
		}
		s, err := harness.LoadScenario(target)
		loaded = []harness.LoadedScenario{{Path: target, Scenario: s, Err: err}}
	}

	if len(loaded) == 0 {
		if opts.Format == "json" {
			return outputCheckJSON(f, cmd, CheckResult{Scenarios: []ScenarioResult{}})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		return nil
	}

	result := CheckResult{
		Scenarios: make([]ScenarioResult, 0, len(loaded)),
		Total:     len(loaded),
	}
	for _, l := range loaded {
		f.VerboseLog("checking %s", l.Path)
		sr := checkScenario(opts, f, l, cmd)
		result.Scenarios = append(result.Scenarios, sr)
		if l.Err != nil {
			result.Malformed++
		}
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	opts.log().Debug("check finished", "passed", result.Passed, "failed", result.Failed)

	if opts.Format == "json" {
		err = outputCheckJSON(f, cmd, result)
	} else {
		err = outputCheckText(cmd, result)
	}
	if result.Malformed > 0 {
		return WrapExitError(ExitCommandError, fmt.Sprintf("%d scenario(s) could not be loaded", result.Malformed), err)
	}
	return err
}

// loadScenarioDir loads the scenarios directly inside dir whose file name,
// without extension, matches filter. An empty filter matches everything.
func loadScenarioDir(dir, filter string) ([]harness.LoadedScenario, error) {
	if filter != "" {
		if _, err := filepath.Match(filter, ""); err != nil {
			return nil, fmt.Errorf("invalid filter pattern: %w", err)
		}
	}

	all, err := harness.LoadDir(dir)
	if errors.Is(err, harness.ErrNoScenarios) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if filter == "" {
		return all, nil
	}

	var matched []harness.LoadedScenario
	for _, l := range all {
		base := filepath.Base(l.Path)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		if ok, _ := filepath.Match(filter, name); ok {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

// checkScenario runs and golden-compares one loaded scenario.
func checkScenario(opts *CheckOptions, f *OutputFormatter, l harness.LoadedScenario, cmd *cobra.Command) ScenarioResult {
	w := cmd.OutOrStdout()
	text := opts.Format != "json"

	fail := func(golden bool, errs ...string) ScenarioResult {
		if text {
			fmt.Fprintf(w, "✗ %s\n", l.Name())
			for _, e := range errs {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
		return ScenarioResult{Name: l.Name(), Pass: false, Golden: golden, Errors: errs}
	}

	if l.Err != nil {
		return fail(false, fmt.Sprintf("failed to load scenario: %v", l.Err))
	}
	scenario := l.Scenario

	result, err := harness.RunWithLogger(scenario, opts.log())
	if err != nil {
		return fail(false, fmt.Sprintf("execution failed: %v", err))
	}

	digest, err := harness.TraceDigest(scenario.Name, result)
	if err != nil {
		return fail(false, fmt.Sprintf("digest failed: %v", err))
	}

	current, err := harness.CanonicalTrace(scenario.Name, result)
	if err != nil {
		return fail(false, fmt.Sprintf("failed to marshal trace: %v", err))
	}

	goldenPath := goldenFilePath(l.Path, scenario.Name)
	if opts.Update {
		if err := writeGoldenFile(goldenPath, current); err != nil {
			return fail(false, fmt.Sprintf("failed to update golden file: %v", err))
		}
		f.VerboseLog("wrote %s", goldenPath)
		if text {
			fmt.Fprintf(w, "✓ %s (golden updated)\n", scenario.Name)
		}
		return ScenarioResult{Name: scenario.Name, Pass: true, Golden: true, Digest: digest}
	}

	compared := false
	golden, err := os.ReadFile(goldenPath)
	switch {
	case os.IsNotExist(err):
		f.VerboseLog("no golden file at %s", goldenPath)
	case err != nil:
		return fail(false, fmt.Sprintf("failed to read golden file: %v", err))
	case !bytes.Equal(golden, current):
		return fail(true, append([]string{"trace does not match golden file (run with --update to regenerate)"}, result.Errors...)...)
	default:
		compared = true
		f.VerboseLog("trace matches %s", goldenPath)
	}

	if !result.Pass {
		return fail(compared, result.Errors...)
	}

	if text {
		fmt.Fprintf(w, "✓ %s\n", scenario.Name)
	}
	return ScenarioResult{Name: scenario.Name, Pass: true, Golden: compared, Digest: digest}
}

// goldenFilePath returns the golden file for a scenario: a "golden"
// directory beside the scenario directory, keyed by scenario name.
func goldenFilePath(scenarioFile, scenarioName string) string {
	root := filepath.Dir(filepath.Dir(scenarioFile))
	return filepath.Join(root, "golden", scenarioName+".golden")
}

// writeGoldenFile writes data to path, creating the golden directory.
func writeGoldenFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// outputCheckJSON outputs the check result as JSON.
func outputCheckJSON(f *OutputFormatter, cmd *cobra.Command, result CheckResult) error {
	response := CLIResponse{
		Status:  "ok",
		Data:    result,
		TraceID: f.TraceID,
	}
	if result.Failed > 0 {
		response.Status = "error"
		response.Error = &CLIError{
			Code:    "E_CHECK_FAILED",
			Message: fmt.Sprintf("%d scenario(s) failed", result.Failed),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	return nil
}

// outputCheckText outputs the check summary as text.
func outputCheckText(cmd *cobra.Command, result CheckResult) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All scenarios passed")
	return nil
}
