package document

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"

	"github.com/bcparks/scrape-cleanup/formatter"
)

// FileMode is the permission given to written documents.
const FileMode os.FileMode = 0o644

// WriteDestination encodes doc with b and replaces path with the result.
// The parent directory must already exist. On failure the returned error is
// a *WriteError and any previous file at path is unchanged.
func WriteDestination(path string, doc *Destination, b *formatter.DocumentBuilder) error {
	if b == nil {
		b = formatter.NewDocumentBuilder()
	}
	data, err := b.BuildJSON(doc)
	if err != nil {
		return &WriteError{Path: path, Op: "encode", Err: err}
	}
	// atomic.WriteFile syncs a temp file in the same directory, renames it
	// over path and removes it on any failure.
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	// New files come out of the temp file as 0600, replaced ones keep the
	// old mode.
	if err := os.Chmod(path, FileMode); err != nil {
		return &WriteError{Path: path, Op: "chmod", Err: err}
	}
	return nil
}
