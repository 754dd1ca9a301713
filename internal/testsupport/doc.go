// Package testsupport provides helpers for building isolated configs and
// small movie datasets in tests.
package testsupport
