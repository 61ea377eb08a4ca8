package arraykit

// PrefixSum returns the inclusive prefix sum of seq:
// out[0] = seq[0] and out[i] = out[i-1] + seq[i].
//
// Sums wrap on overflow like any Go int addition.
func (t *Toolkit) PrefixSum(seq []int) ([]int, error) {
	if len(seq) == 0 {
		return nil, errEmpty(OpPrefixSum)
	}

	out := make([]int, len(seq))
	carry := 0
	for i, v := range seq {
		carry += v
		out[i] = carry
	}
	return out, nil
}
