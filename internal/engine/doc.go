// Package engine exposes the block editor as a single facade. An Editor
// owns the document, the selection, the slash menu, and the undo
// timeline, and keeps them consistent with each other: every document
// change flows through one commit path, every commit lands in history
// exactly once, and any command that removes blocks repairs the
// selection and caret before it returns.
//
// The document itself is a pure value (package document); the Editor is
// where mutation, locking, and cross-cutting policy live. UI layers call
// the command methods and re-render from the read methods; they never
// manipulate document values directly.
//
// Change notification is synchronous and carries an independent document
// copy, which is what persistence hooks onto. Undo and redo emit events
// like any edit, tagged with their origin, so an autosaver keeps disk in
// step with what the user actually sees.
package engine
