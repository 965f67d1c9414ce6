// Package slash implements the in-block command menu: typing '/' at the
// end of a block opens a fuzzy-filtered catalog of block types, arrow
// keys move the highlight, Enter or a click commits the type switch, and
// Escape dismisses.
//
// The menu is modeled as an explicit state machine over content edits
// rather than regex probing of the block text on every render. The text
// stored in the document always includes the typed slash segment; hiding
// it is a display concern, so cancelling can restore the preceding text
// exactly.
package slash
