// Package tui implements the interactive dashboard shown with -tui.
//
// The dashboard is a bubbletea program. A scan runs in a tea.Cmd and talks
// to the program through a shared programRef: the bridge types in this
// package implement the orchestration reporter and presenter interfaces by
// turning every update into a tea.Msg.
//
// Layout:
//
//	+-------------------------------------------------+
//	| header: title, range, elapsed                   |
//	+----------------------------+--------------------+
//	| logs (scrollable)          | metrics            |
//	|                            +--------------------+
//	|                            | chart              |
//	+----------------------------+--------------------+
//	| footer: status, key help                        |
//	+-------------------------------------------------+
package tui
