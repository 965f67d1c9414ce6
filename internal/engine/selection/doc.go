// Package selection models block selection as it behaves under pointer
// gestures: a press collapses the selection and arms a drag, dragging or
// shift-clicking extends it across the contiguous flattened range, and
// deletions repair the selection onto a surviving neighbor instead of
// leaving it dangling.
package selection
