// Package input normalizes host key events and routes them to editor
// commands. The split between consumed and unconsumed events is the
// package's contract: structural editing (splits, boundary backspaces,
// block navigation, undo chords, the slash menu keys) is decided here,
// character editing stays with the host text field.
package input
