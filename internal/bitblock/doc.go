// Package bitblock implements the fixed-width bitmask primitive ("BitBlock")
// that the hierarchical bitmap tree uses to track which sparse indices within
// a node have a child or payload entry.
//
// A Block is a dense bitmask of 2^W bits, where W is the per-level index
// width of the owning tree. W <= 6 fits in a single 64-bit word; wider W
// (the SIMD-block case) spans multiple words, and Rank/PopCount sum across
// words the way the spec describes for 128/256-bit SIMD blocks.
package bitblock
