// Package fileutil provides shared file permission constants and small
// filesystem helpers.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for cached policy documents
// and other files private to the invoking user (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the directory permission mode for created
// directories such as the cache directory.
const DirReadableByAll os.FileMode = 0o755

// EnsureDir creates dir and any missing parents with DirReadableByAll
// permissions. Existing directories are left untouched.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, DirReadableByAll)
}
