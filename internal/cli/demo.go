package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/arraykit/internal/arraykit"
)

// demoCase is one operation applied to its sample input.
type demoCase struct {
	op    string
	input []int
	run   func(seq []int) (any, error)
}

// demoCases returns the demonstration in print order.
func demoCases() []demoCase {
	return []demoCase{
		{
			op:    arraykit.OpRotateLeft,
			input: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
			run:   func(seq []int) (any, error) { return arraykit.RotateLeft(seq, 3) },
		},
		{
			op:    arraykit.OpPrefixSum,
			input: []int{2, 4, 6, 8},
			run:   func(seq []int) (any, error) { return arraykit.PrefixSum(seq) },
		},
		{
			op:    arraykit.OpCountDuplicates,
			input: []int{1, 2, 3, 2, 4, 3, 5},
			run:   func(seq []int) (any, error) { return arraykit.CountDuplicates(seq) },
		},
		{
			op:    arraykit.OpMoveElement,
			input: []int{10, 20, 30, 40, 50},
			run:   func(seq []int) (any, error) { return arraykit.MoveElement(seq, 1, 3) },
		},
		{
			op:    arraykit.OpSortAscending,
			input: []int{0, 1, 0, 0, 1, 0},
			run:   func(seq []int) (any, error) { return arraykit.SortAscending(seq) },
		},
		{
			op:    arraykit.OpSortDescending,
			input: []int{0, 1, 0, 0, 1, 0},
			run:   func(seq []int) (any, error) { return arraykit.SortDescending(seq) },
		},
	}
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Apply every operation to its sample input",
		Long: `Apply every operation to a fixed sample input and print the results.

  rotate_left      [1..9] by 3
  prefix_sum       [2 4 6 8]
  count_duplicates [1 2 3 2 4 3 5]
  move_element     [10 20 30 40 50] from 1 to 3
  sort_ascending   [0 1 0 0 1 0]
  sort_descending  [0 1 0 0 1 0]`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd)
		},
	}

	return cmd
}

func runDemo(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	logger := opts.log()

	results := make([]OpResult, 0, 6)
	var text strings.Builder
	for _, c := range demoCases() {
		input := c.input
		res, err := evaluate(c.op, input, func() (any, error) { return c.run(input) })
		if err != nil {
			return WrapExitError(ExitCommandError, "demo "+c.op+" failed", err)
		}
		logger.Debug("demo step", "op", c.op, "digest", res.Digest)

		results = append(results, res)
		text.WriteString(renderText(res.Output))
		if c.op == arraykit.OpCountDuplicates {
			// The report ends with its own newline; a blank line separates it.
			text.WriteByte('\n')
		}
	}

	return f.Render(results, text.String())
}
