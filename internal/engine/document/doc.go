// Package document defines the block-structured document model: a
// document is an ordered list of sections, and a section is an ordered
// list of typed blocks (paragraphs, bullets, and two heading levels).
//
// The model is value-oriented. Every operation returns a new
// Document and never mutates its receiver, which makes documents safe to
// hand across goroutines and trivial to snapshot for history. Operations
// addressed at ids that no longer exist return the document unchanged, so
// callbacks firing against stale state settle as no-ops.
//
// The flattened reading order (Flatten, FlatIndex, RangeBetween,
// Navigate) is the coordinate system shared by selection, navigation, and
// deletion repair: blocks in section order, sections in document order,
// with section boundaries invisible.
package document
