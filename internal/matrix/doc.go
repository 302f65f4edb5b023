// Package matrix provides fixed-size square matrices of float32 values.
//
// The order of a matrix is part of its type. Go has no integer type
// parameters, so the order is carried by the row-major backing array:
//
//   - [Mat2]: 2×2, backed by [Size2] ([4]float32)
//   - [Mat3]: 3×3, backed by [Size3] ([9]float32)
//   - [Mat4]: 4×4, backed by [Size4] ([16]float32)
//
// Any array listed in [Cells] works, from the empty order-0 matrix up to 8×8.
// Adding or multiplying matrices of different orders does not compile.
//
// # Example
//
//	a := matrix.New(matrix.Size2{1, 2, 3, 4})
//	b := matrix.New(matrix.Size2{5, 6, 7, 8})
//	c := a.Mul(b) // [[19, 22], [43, 50]]
//
// # Values
//
// A [Matrix] is a plain value. Assignment copies it, the binary operations
// never touch their operands, and == compares element-wise with IEEE-754
// semantics (NaN is never equal to itself). Reading or writing outside
// [0, N) panics with an [*IndexError].
//
// # Thread Safety
//
// Nothing in the package holds shared state. Independent values can be used
// from any number of goroutines; a single value shared between goroutines
// follows the usual rule of many readers or one writer.
package matrix
