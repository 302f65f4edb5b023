// Package tui is the interactive matrix calculator.
//
// Two operand grids sit side by side with the operator between them and the
// result on the right. The result is recomputed whenever an operand cell,
// the operator or a reset changes something.
//
// # Key Bindings
//
//	←↓↑→ / hjkl  move the cursor
//	tab          switch operand
//	+ / -        nudge the cell by the configured step
//	enter        type a value
//	o            cycle operator (m, a, s select directly)
//	z / i        reset the focused operand to zero / identity
//	t            cycle color themes
//	q            quit
package tui
