// Package viz renders matrices and calculator state for the terminal.
//
// Everything here is a pure string function built on lipgloss:
//
//   - [Theme.RenderMatrix]: a bracketed grid with optional cursor highlight
//   - [Theme.RenderEquation]: left op right = result, laid out side by side
//   - [Sparkline]: one-line chart of a numeric series
//
// Five color schemes are built in; see [Themes].
package viz
