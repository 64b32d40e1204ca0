// Package ui holds the contracts shared by the terminal renderers.
package ui

// Renderable is anything that can produce a terminal string.
type Renderable interface {
	View() string
}
