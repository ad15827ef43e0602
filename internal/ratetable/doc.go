// Package ratetable provides the two piecewise-rate primitives used by the
// reimbursement policies.
//
// A Table is an ordered list of bands, each covering a range of the input
// with explicit inclusive or exclusive bounds. Lookup returns the value of the
// first band that contains the input, so overlapping bands resolve in
// declaration order, exactly like a chain of if/else checks would.
//
// A Schedule is a list of cumulative tiers. Apply consumes the input tier by
// tier, charging each slice at its tier's rate, so crossing a threshold never
// reprices the amount already consumed.
//
// Both types are plain values. Once built they are never mutated and are safe
// for concurrent use.
package ratetable
