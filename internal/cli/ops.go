package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/arraykit/internal/arraykit"
	"github.com/roach88/arraykit/internal/codec"
	"github.com/roach88/arraykit/internal/harness"
)

// OpResult is the JSON payload for a single operation.
type OpResult struct {
	Op     string `json:"op"`
	Input  []int  `json:"input"`
	Output any    `json:"output"`
	Digest string `json:"digest"`
}

// DuplicatesOutput is the JSON form of a duplicate report.
type DuplicatesOutput struct {
	Duplicates arraykit.Report `json:"duplicates"`
	Report     string          `json:"report"`
}

// SequenceOptions holds the input flag shared by every operation command.
type SequenceOptions struct {
	*RootOptions
	Values []int
}

func (o *SequenceOptions) bindValues(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&o.Values, "values", []int{}, "input sequence (comma-separated, e.g. 1,2,3)")
}

// RotateOptions holds flags for the rotate command.
type RotateOptions struct {
	SequenceOptions
	Positions int
	Rotation  string
}

// NewRotateCommand creates the rotate command.
func NewRotateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RotateOptions{SequenceOptions: SequenceOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate a sequence left",
		Long: `Rotate a sequence left by --positions.

In strict mode (the default) positions must be positive. In generalized
mode zero is the identity and negative values rotate right.

Examples:
  arraykit rotate --values 1,2,3,4,5,6,7,8,9 --positions 3
  arraykit rotate --values 1,2,3 --positions -1 --rotation generalized`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := arraykit.ParseRotationMode(opts.Rotation)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid --rotation", err)
			}
			tk := arraykit.New(arraykit.Config{Rotation: mode})
			return runOperation(opts.RootOptions, cmd, arraykit.OpRotateLeft, opts.Values, func() (any, error) {
				return tk.RotateLeft(opts.Values, opts.Positions)
			})
		},
	}

	opts.bindValues(cmd)
	cmd.Flags().IntVar(&opts.Positions, "positions", 0, "number of positions to rotate left (required)")
	cmd.Flags().StringVar(&opts.Rotation, "rotation", string(arraykit.RotationStrict), "rotation mode (strict|generalized)")
	_ = cmd.MarkFlagRequired("positions")

	return cmd
}

// NewPrefixSumCommand creates the prefix-sum command.
func NewPrefixSumCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SequenceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "prefix-sum",
		Short: "Compute the inclusive prefix sum of a sequence",
		Long: `Compute the inclusive prefix sum of a sequence.

Example:
  arraykit prefix-sum --values 2,4,6,8`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(opts.RootOptions, cmd, arraykit.OpPrefixSum, opts.Values, func() (any, error) {
				return arraykit.PrefixSum(opts.Values)
			})
		},
	}

	opts.bindValues(cmd)
	return cmd
}

// NewDuplicatesCommand creates the duplicates command.
func NewDuplicatesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SequenceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "duplicates",
		Short: "Report values occurring more than once",
		Long: `Report values occurring more than once, in order of first appearance.

Example:
  arraykit duplicates --values 1,2,3,2,4,3,5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(opts.RootOptions, cmd, arraykit.OpCountDuplicates, opts.Values, func() (any, error) {
				return arraykit.CountDuplicates(opts.Values)
			})
		},
	}

	opts.bindValues(cmd)
	return cmd
}

// MoveOptions holds flags for the move command.
type MoveOptions struct {
	SequenceOptions
	From int
	To   int
}

// NewMoveCommand creates the move command.
func NewMoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MoveOptions{SequenceOptions: SequenceOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move one element to a new index",
		Long: `Move the element at --from to --to, shifting the elements in between.

Example:
  arraykit move --values 10,20,30,40,50 --from 1 --to 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(opts.RootOptions, cmd, arraykit.OpMoveElement, opts.Values, func() (any, error) {
				return arraykit.MoveElement(opts.Values, opts.From, opts.To)
			})
		},
	}

	opts.bindValues(cmd)
	cmd.Flags().IntVar(&opts.From, "from", 0, "index of the element to move (required)")
	cmd.Flags().IntVar(&opts.To, "to", 0, "destination index (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// SortOptions holds flags for the sort command.
type SortOptions struct {
	SequenceOptions
	Descending bool
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{SequenceOptions: SequenceOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort a sequence",
		Long: `Sort a sequence in ascending order, or descending with --desc.

Examples:
  arraykit sort --values 0,1,0,0,1,0
  arraykit sort --values 0,1,0,0,1,0 --desc`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Descending {
				return runOperation(opts.RootOptions, cmd, arraykit.OpSortDescending, opts.Values, func() (any, error) {
					return arraykit.SortDescending(opts.Values)
				})
			}
			return runOperation(opts.RootOptions, cmd, arraykit.OpSortAscending, opts.Values, func() (any, error) {
				return arraykit.SortAscending(opts.Values)
			})
		},
	}

	opts.bindValues(cmd)
	cmd.Flags().BoolVar(&opts.Descending, "desc", false, "sort in descending order")

	return cmd
}

// runOperation executes fn and writes its outcome. Rejected input is
// reported through the formatter and returned as an ExitFailure error.
func runOperation(opts *RootOptions, cmd *cobra.Command, op string, input []int, fn func() (any, error)) error {
	f := opts.formatter(cmd)
	logger := opts.log()

	res, err := evaluate(op, input, fn)
	if err != nil {
		var ae *arraykit.ArgumentError
		if !errors.As(err, &ae) {
			return WrapExitError(ExitCommandError, op+" failed", err)
		}
		logger.Debug("operation rejected input", "op", op, "arg", ae.Arg)
		if ferr := f.Error(string(ae.Code), ae.Message, map[string]string{"op": ae.Op, "arg": ae.Arg}); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitFailure, op+" failed", err)
	}

	logger.Debug("operation completed", "op", op, "len", len(input), "digest", res.Digest)
	return f.Render(res, renderText(res.Output))
}

// evaluate runs fn and packages its output with a result digest.
func evaluate(op string, input []int, fn func() (any, error)) (OpResult, error) {
	output, err := fn()
	if err != nil {
		return OpResult{}, err
	}

	digest, err := codec.ResultDigest(op, input, harness.CanonicalOutput(output))
	if err != nil {
		return OpResult{}, err
	}

	if report, ok := output.(arraykit.Report); ok {
		output = DuplicatesOutput{Duplicates: report, Report: report.String()}
	}
	return OpResult{Op: op, Input: input, Output: output, Digest: digest}, nil
}

// renderText renders an operation output the way the demo prints it.
func renderText(output any) string {
	switch out := output.(type) {
	case []int:
		return FormatSequence(out)
	case DuplicatesOutput:
		return out.Report
	default:
		return ""
	}
}

// FormatSequence renders seq with each element followed by a space, then a
// newline: [1 2 3] -> "1 2 3 \n".
func FormatSequence(seq []int) string {
	var b strings.Builder
	for _, v := range seq {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String()
}
