// Package util provides small helpers shared by the parser and the CLI:
// integer-list parsing, line sanitising and generic slice helpers.
package util
