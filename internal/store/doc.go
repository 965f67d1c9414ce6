// Package store persists session documents on disk.
//
// Each session is one JSON file, "<id>.json", in a flat directory
// managed through diskv. The stored payload is a Session record: the
// document plus its id and last-saved timestamp.
//
// Three collaborators build on that base:
//
//   - Store: Save/Load/Delete plus listing, safe for concurrent use.
//   - Autosaver: debounces the editor's change stream into occasional
//     writes, so typing does not hit the disk per keystroke.
//   - Watch: streams filesystem change events (fsnotify) so another
//     process editing the same directory can refresh its view.
//
// The store validates documents on load, not on save; the engine only
// hands out valid snapshots, while files on disk can be edited by hand
// and deserve the check.
package store
