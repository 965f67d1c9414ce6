// Package history implements the undo timeline as a linear sequence of
// full document snapshots.
//
// The timeline stores whole snapshots rather than deltas. Documents in
// this product are small (tens of blocks), so full copies stay cheap,
// and restoration is unconditional: there is no command inversion, undo
// simply re-points the editor at an earlier value.
//
// The replay guard exists because the editor routes every document
// change, including snapshots restored by undo and redo, through one
// commit path. Undo arms the guard; the commit that follows consumes it
// and records nothing, so replays never show up as new edits.
package history
