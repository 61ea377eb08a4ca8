// Package arraykit provides pure functions over integer sequences.
//
// Every operation validates its preconditions, returns a freshly allocated
// result and leaves its input untouched. Precondition violations are
// reported as *ArgumentError values carrying the INVALID_ARGUMENT code.
//
// Operations:
//   - RotateLeft: cyclic left rotation (strict or generalized, see RotationMode)
//   - PrefixSum: inclusive running sum
//   - CountDuplicates / DuplicateReport: values occurring more than once
//   - MoveElement: relocate one element, shifting the ones in between
//   - SortAscending / SortDescending: ordered copies
//
// All functions are safe for concurrent use. A Toolkit holds no mutable
// state once constructed.
package arraykit
