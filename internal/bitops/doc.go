// Package bitops provides portable, allocation-free word-array kernels
// (AND/OR/ANDNOT/popcount) over []uint64, plus a best-effort CPU capability
// probe used only for diagnostics.
//
// The kernels are pure Go today; the capability/dispatch seam mirrors the
// teacher's SIMD-kernel pattern so a platform-specific build can plug in
// assembly-backed kernels later without changing callers.
package bitops
