//go:build tools

package tools

// This file tracks CLI tool dependencies used during development.
// It is not compiled into the binary.
//
// goose is pinned via the go.mod tool directive. moq is installed
// separately (go install github.com/matryer/moq@latest) and invoked
// through the go:generate directives in the service packages.
