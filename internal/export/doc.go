// Package export writes figure and report files.
//
// Writes are atomic (temp file then rename) and serialized across processes
// with an advisory lock beside the target, so a reader never observes a
// partially written figure.
package export
