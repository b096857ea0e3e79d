// Package modeldesc parses the modelDescription.xml of an FMI 1.0
// co-simulation FMU into a validated, strongly typed tree, and provides
// a typed query API over that tree.
//
// The document vocabulary is fixed: any element name, attribute name or
// enum literal outside it fails the parse. Structural errors are fatal
// and yield no tree; unresolved declaredType references are collected
// during a post-parse pass and fail validation as a group.
package modeldesc

import (
	"io"
	"log/slog"
)

const Version = "0.9.0"

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Parse parses a document held in memory using a default Parser.
func Parse(data []byte) (*ModelDescription, error) {
	return New().ParseString(string(data))
}

// ParseFile parses the document at path using a default Parser.
func ParseFile(path string) (*ModelDescription, error) {
	return New().ParseFile(path)
}
