// Package dtw computes Dynamic Time Warping distances between numeric
// sequences of possibly different length.
//
// pathdist uses it as an alternative to zero-padded Euclidean distance when
// comparing the capacity sums of drained paths: two graphs that exhaust
// after a different number of rounds are aligned instead of padded.
//
// Recurrence (1-based, D[0][0] = 0, other borders +Inf):
//
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//
// where p is the slope penalty. A Sakoe–Chiba window w restricts cells to
// |i-j| ≤ w.
//
// Complexity:
//
//   - Time:   O(N·M), or O(N·w) with a window
//   - Memory: O(N·M) for Align, O(M) for Distance with WithRollingRows
//
// Errors:
//
//   - ErrEmptySequence    if either input is empty.
//   - ErrOptionViolation  for a negative window or penalty.
//   - ErrAlignNeedsMatrix if Align is combined with WithRollingRows.
//   - ErrNoAlignment      if the window forbids reaching (N, M).
package dtw
