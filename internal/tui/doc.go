// Package tui implements the terminal launcher: a filterable bookmark list
// with a web search box, the intake summary of a day and the background
// settings page.
//
// Every page is a bubbletea model routed by [RootModel]. Service calls run
// inside tea.Cmd functions and report back through messages.
package tui
