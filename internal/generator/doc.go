// Package generator produces datasets by rejection sampling.
//
// ARCHITECTURE:
//
// Row generation is a two-state machine. A row starts in Retrying: it draws
// a control point quadruple, evaluates the potential over the grid, and
// classifies the curve. A rejected candidate is discarded and the row draws
// again; nothing about rejected attempts is remembered beyond the counters
// in RowStats. An accepted candidate moves the row to Accepted, where the
// derivative curve is evaluated from the same quadruple and the row is
// returned.
//
// The loop is bounded by Config.MaxAttempts. Exhausting the budget returns
// *NoAcceptableSampleError instead of spinning forever.
//
// Orchestration:
// Generate fans rows out over an errgroup limited to Config.EffectiveWorkers
// goroutines. Rows share only the read-only grid. Each row draws from its own
// PCG stream seeded by (run seed, row index), so a dataset depends only on
// the config and never on scheduling or worker count. Generate returns after
// every row has finished; the first failing row cancels the rest and its
// error is returned.
package generator
