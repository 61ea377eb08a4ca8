package arraykit

import (
	"fmt"
	"strings"
)

// Duplicate is a value that occurs more than once in a sequence.
type Duplicate struct {
	Value int `json:"value" yaml:"value"`
	Count int `json:"count" yaml:"count"`
}

// String renders the report line for d, without the trailing newline.
func (d Duplicate) String() string {
	return fmt.Sprintf("Element %d is duplicated %d times.", d.Value, d.Count)
}

// Report lists duplicated values in order of their first appearance.
type Report []Duplicate

// String renders one newline-terminated line per duplicate.
// An empty report renders as the empty string.
func (r Report) String() string {
	var b strings.Builder
	for _, d := range r {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// CountDuplicates counts occurrences of each value in seq and returns
// those occurring more than once. Values appear in the order of their first
// occurrence in seq, so the result is deterministic.
func (t *Toolkit) CountDuplicates(seq []int) (Report, error) {
	if len(seq) == 0 {
		return nil, errEmpty(OpCountDuplicates)
	}

	counts := make(map[int]int, len(seq))
	order := make([]int, 0, len(seq))
	for _, v := range seq {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	report := Report{}
	for _, v := range order {
		if c := counts[v]; c > 1 {
			report = append(report, Duplicate{Value: v, Count: c})
		}
	}
	return report, nil
}

// DuplicateReport renders the result of CountDuplicates as text, one
// "Element {value} is duplicated {count} times." line per duplicate.
func (t *Toolkit) DuplicateReport(seq []int) (string, error) {
	report, err := t.CountDuplicates(seq)
	if err != nil {
		return "", err
	}
	return report.String(), nil
}
