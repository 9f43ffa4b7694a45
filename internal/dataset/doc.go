// Package dataset holds the accepted curves of one generation run.
//
// A Dataset has exactly one Row per requested row index, stored in index
// order. Column i of the exported table is named "v{i}" and holds the
// potential values of row i followed by its derivative values when the run
// produced them.
//
// Datasets are built once by the generator and never mutated afterwards.
// Digest gives a content address for a dataset so that stored runs can be
// compared and checked for drift.
package dataset
