/*
Package storage provides data models for the resolution audit log.
*/
package storage

import "time"

// ResolutionEvent represents a single tool home resolution.
type ResolutionEvent struct {
	// Node is the fleet node the resolution was performed for.
	Node string `json:"node"`

	// ToolKey is the "type@name" compound key of the installation.
	ToolKey string `json:"tool_key"`

	// Home is the effective home path the resolution produced.
	Home string `json:"home"`

	// Overridden indicates whether a node override supplied the home (true)
	// or the installation's default was used (false).
	Overridden bool `json:"overridden"`

	// Timestamp is when the resolution was performed.
	Timestamp time.Time `json:"timestamp"`
}
