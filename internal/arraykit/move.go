package arraykit

// MoveElement returns a copy of seq with the element at from relocated to
// index to. Elements between the two positions shift by one slot to close
// the gap; all other elements keep their relative order.
//
// Example:
//
//	MoveElement([]int{10, 20, 30, 40, 50}, 1, 3)
//	// [10 30 40 20 50]
func (t *Toolkit) MoveElement(seq []int, from, to int) ([]int, error) {
	if len(seq) == 0 {
		return nil, errEmpty(OpMoveElement)
	}
	if from < 0 || from >= len(seq) {
		return nil, newArgumentError(OpMoveElement, "from", "indices must be within the bounds of the array")
	}
	if to < 0 || to >= len(seq) {
		return nil, newArgumentError(OpMoveElement, "to", "indices must be within the bounds of the array")
	}

	out := make([]int, len(seq))
	copy(out, seq)

	v := out[from]
	switch {
	case from < to:
		copy(out[from:to], out[from+1:to+1]) // shift left
	case from > to:
		copy(out[to+1:from+1], out[to:from]) // shift right
	}
	out[to] = v
	return out, nil
}
