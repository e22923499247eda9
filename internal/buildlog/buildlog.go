// Package buildlog is the thin logging seam used by the build pipeline
// (shape/build.go), grounded on the teacher's use of
// the standard log package with a package-level *log.Logger (no
// structured-logging library appears anywhere in the retrieval pack,
// so this stays on log per spec.md's ambient-stack guidance to match
// what the corpus actually reaches for rather than invent a dependency).
package buildlog

import (
	"log"
	"os"
)

var std = log.New(os.Stderr, "npgen: ", log.LstdFlags)

// SetOutput redirects the package logger, primarily for tests that
// want to assert on emitted lines.
func SetOutput(l *log.Logger) { std = l }

// Infof logs an informational line.
func Infof(format string, args ...any) {
	std.Printf(format, args...)
}

// Warnf logs a warning line.
func Warnf(format string, args ...any) {
	std.Printf("WARN "+format, args...)
}

// Errorf logs an error line.
func Errorf(format string, args ...any) {
	std.Printf("ERROR "+format, args...)
}
