// Package math provides elementary math functions over lanes vectors.
//
// Every function is the vector form of a scalar function from the
// standard math vocabulary, applied lane by lane in the element's own
// precision: for all i, Exp(v).At(i) == float32(math.Exp(float64(v.At(i))))
// when T is float32, and math.Exp(v.At(i)) when T is float64, bit for
// bit. Optimized replacements registered through the dispatch variables
// (Exp32, Log64, ...) must preserve that equivalence.
//
// Classification functions (Fpclassify, IsNaN, Signbit, ...) return their
// per-lane codes packed into an integer-kind vector matching the scalar
// return kind, not a Mask.
//
// All functions are pure: no shared state, safe to call concurrently on
// distinct or shared inputs.
package math
