// Package shape classifies candidate curves.
//
// CountExtrema counts strict local maxima and minima with a boundary-aware
// rule: the first and last samples are compared against their single
// neighbour, interior samples against both neighbours anchored on the
// previous one. Plateaus and shoulders are not extrema.
//
// Criteria applies the acceptance gates in a fixed order: finiteness,
// amplitude, then extremum counts. Extrema are only counted when the cheaper
// gates pass.
package shape
