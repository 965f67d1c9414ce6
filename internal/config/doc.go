// Package config loads and resolves user settings.
//
// Settings come from three sources, later ones overriding earlier:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, conventionally ~/.config/minuta/config.toml
//  3. MINUTA_* environment variables
//
// A missing config file is normal and silently falls back to defaults;
// a malformed one is a hard error so typos do not vanish into fallback
// behavior.
//
// The file format:
//
//	[document]
//	section_titles = ["Summary", "Agenda", "Decisions", "Action items"]
//	new_section_title = "New section"
//
//	[history]
//	max_entries = 1000
//	coalesce_typing = true
//	coalesce_window_ms = 750
//
//	[autosave]
//	enabled = true
//	debounce_ms = 2000
//
//	[storage]
//	dir = "~/notes"
//
//	[export]
//	dir = "~/exports"
//
// New-document skeletons can also come from standalone YAML template
// files (see Template), pointed at by document.template.
package config
