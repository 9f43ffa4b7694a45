// Package export writes datasets to the wide columnar CSV layout.
//
// Every dataset row becomes one column named v0, v1, ... in row order.
// Lines hold the potential values on the grid, followed by the derivative
// values when the dataset carries them.
package export
