// Package calc drives matrix arithmetic the way an interactive front end
// needs it.
//
//   - [Operation]: the operator selector (×, +, −)
//   - [Calculator]: two operands, an operator and a cached result that is
//     recomputed only when an input actually changes
//   - [Registry]: named operand presets (zero, identity, counting, ...)
//   - [ParseMatrix]: "1,2;3,4" style command-line input
//   - [Power], [Trace], [Frobenius]: summaries for plotting repeated products
//
// Everything here works for any order supported by the matrix package; the
// order stays a type parameter all the way through.
package calc
