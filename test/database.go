// Package test contains helpers shared by the tests of all packages.
package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns a path for a sqlite database that is removed
// when the test finishes. Every call returns a new path.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}
