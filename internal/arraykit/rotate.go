package arraykit

// RotateLeft returns seq rotated left by positions.
//
// The effective rotation is positions mod len(seq), so rotating by a multiple
// of the length returns a copy of seq. Under RotationStrict, positions <= 0 is
// rejected. Under RotationGeneralized, zero is the identity and a negative
// value rotates right by -positions.
//
// Example:
//
//	RotateLeft([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3)
//	// [4 5 6 7 8 9 1 2 3]
func (t *Toolkit) RotateLeft(seq []int, positions int) ([]int, error) {
	if t.Config().Rotation == RotationStrict && positions <= 0 {
		return nil, newArgumentError(OpRotateLeft, "positions", "positions must be a positive integer")
	}
	if len(seq) == 0 {
		return nil, errEmpty(OpRotateLeft)
	}

	n := len(seq)
	k := positions % n
	if k < 0 {
		k += n
	}

	out := make([]int, 0, n)
	out = append(out, seq[k:]...)
	out = append(out, seq[:k]...)
	return out, nil
}
