// Package source holds the small amount of file-identity plumbing
// shared by the root cstyle package and the CLI driver: reading a
// file into memory and naming the line a diagnostic refers to.
package source

import "os"

// File is an in-memory source file: a path (empty for buffers that
// were never backed by disk) and its raw bytes, unmodified.
type File struct {
	Path    string
	Content []byte
}

// Pos names a 1-based line within a File. Column tracking is not
// needed anywhere in this module: every diagnostic and trace event
// refers to a whole logical line, never a byte offset within it.
type Pos struct {
	Line int
}

// ReadFile loads path into a File.
func ReadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &File{Path: path, Content: b}, nil
}

// FromBytes wraps an in-memory buffer that has no backing path, for
// callers of the library entry point that never touch the filesystem.
func FromBytes(content []byte) *File {
	return &File{Content: content}
}
