//go:build tools

package tools

// This file pins CLI tools used by the build. It is not compiled into the
// binary.
//
// goose is tracked by the tool directive in go.mod.
// Mocks are generated with github.com/matryer/moq via go:generate lines in
// the *_test.go files of each package.
