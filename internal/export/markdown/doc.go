// Package markdown converts between documents and their canonical
// markdown projection. Serialize is the single formatting authority for
// every outward surface (clipboard, file export, machine summaries), so
// the mapping lives here and nowhere else.
package markdown
