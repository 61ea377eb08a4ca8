package arraykit

import "fmt"

// Operation names used in error values and by callers that dispatch by name.
const (
	OpRotateLeft      = "rotate_left"
	OpPrefixSum       = "prefix_sum"
	OpCountDuplicates = "count_duplicates"
	OpMoveElement     = "move_element"
	OpSortAscending   = "sort_ascending"
	OpSortDescending  = "sort_descending"
)

// Operations lists every operation name in a stable order.
var Operations = []string{
	OpRotateLeft,
	OpPrefixSum,
	OpCountDuplicates,
	OpMoveElement,
	OpSortAscending,
	OpSortDescending,
}

// RotationMode controls how RotateLeft validates its positions argument.
type RotationMode string

const (
	// RotationStrict rejects positions <= 0.
	RotationStrict RotationMode = "strict"

	// RotationGeneralized accepts any positions value: zero is the identity
	// and negative values rotate right.
	RotationGeneralized RotationMode = "generalized"
)

// ParseRotationMode converts a flag or scenario value into a RotationMode.
// The empty string selects RotationStrict.
func ParseRotationMode(s string) (RotationMode, error) {
	switch RotationMode(s) {
	case "", RotationStrict:
		return RotationStrict, nil
	case RotationGeneralized:
		return RotationGeneralized, nil
	default:
		return "", fmt.Errorf("invalid rotation mode %q: must be one of [%s %s]", s, RotationStrict, RotationGeneralized)
	}
}

// Config holds Toolkit settings.
type Config struct {
	Rotation RotationMode
}

// Toolkit runs the sequence operations under a fixed Config.
// The zero value behaves like Default.
type Toolkit struct {
	cfg Config
}

// New creates a Toolkit. An empty Rotation selects RotationStrict.
func New(cfg Config) *Toolkit {
	if cfg.Rotation == "" {
		cfg.Rotation = RotationStrict
	}
	return &Toolkit{cfg: cfg}
}

// Config returns the toolkit settings.
func (t *Toolkit) Config() Config {
	cfg := t.cfg
	if cfg.Rotation == "" {
		cfg.Rotation = RotationStrict
	}
	return cfg
}

// Default is the strict toolkit used by the package-level functions.
var Default = New(Config{Rotation: RotationStrict})

// RotateLeft rotates seq left using the Default toolkit.
func RotateLeft(seq []int, positions int) ([]int, error) {
	return Default.RotateLeft(seq, positions)
}

// PrefixSum computes the inclusive prefix sum of seq.
func PrefixSum(seq []int) ([]int, error) {
	return Default.PrefixSum(seq)
}

// CountDuplicates reports values of seq occurring more than once.
func CountDuplicates(seq []int) (Report, error) {
	return Default.CountDuplicates(seq)
}

// DuplicateReport renders CountDuplicates(seq) as text.
func DuplicateReport(seq []int) (string, error) {
	return Default.DuplicateReport(seq)
}

// MoveElement moves seq[from] to index to.
func MoveElement(seq []int, from, to int) ([]int, error) {
	return Default.MoveElement(seq, from, to)
}

// SortAscending returns seq in non-decreasing order.
func SortAscending(seq []int) ([]int, error) {
	return Default.SortAscending(seq)
}

// SortDescending returns seq in non-increasing order.
func SortDescending(seq []int) ([]int, error) {
	return Default.SortDescending(seq)
}
