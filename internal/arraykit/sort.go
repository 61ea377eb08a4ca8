package arraykit

import "slices"

// SortAscending returns a copy of seq in non-decreasing order.
func (t *Toolkit) SortAscending(seq []int) ([]int, error) {
	if len(seq) == 0 {
		return nil, errEmpty(OpSortAscending)
	}
	out := slices.Clone(seq)
	slices.Sort(out)
	return out, nil
}

// SortDescending returns a copy of seq in non-increasing order, the reverse
// of SortAscending.
func (t *Toolkit) SortDescending(seq []int) ([]int, error) {
	if len(seq) == 0 {
		return nil, errEmpty(OpSortDescending)
	}
	out := slices.Clone(seq)
	slices.Sort(out)
	slices.Reverse(out)
	return out, nil
}
