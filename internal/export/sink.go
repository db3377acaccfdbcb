package export

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
)

// Handle refers to a written export so the caller can share or show it.
type Handle struct {
	ID       string   `json:"id"`
	Location string   `json:"location"`
	Files    []string `json:"files,omitempty"`
	Bytes    int      `json:"bytes"`
}

// Sink is where an export document goes. Write either stores the whole
// document and returns a handle, or returns a *SinkWriteError.
type Sink interface {
	Write(ctx context.Context, doc *Document, fileName string) (Handle, error)
}

// FileSink writes documents into a directory.
type FileSink struct {
	Dir string
}

// NewFileSink creates a FileSink rooted at dir ("." when empty).
func NewFileSink(dir string) *FileSink {
	if dir == "" {
		dir = "."
	}
	return &FileSink{Dir: dir}
}

// Write stores doc.Data as Dir/fileName. It writes a temp file in Dir and
// renames it into place so a failed write leaves no partial file.
func (s *FileSink) Write(ctx context.Context, doc *Document, fileName string) (Handle, error) {
	dest := filepath.Join(s.Dir, filepath.Base(fileName))
	fail := func(err error, msg string) (Handle, error) {
		return Handle{}, &SinkWriteError{Location: dest, Err: eris.Wrap(err, msg)}
	}

	if err := ctx.Err(); err != nil {
		return fail(err, "export: file sink")
	}
	if doc == nil {
		return fail(eris.New("nil document"), "export: file sink")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fail(err, "export: create export dir")
	}

	tmp, err := os.CreateTemp(s.Dir, ".autosar-*.tmp")
	if err != nil {
		return fail(err, "export: create temp file")
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(doc.Data); err != nil {
		_ = tmp.Close()
		return fail(err, "export: write temp file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fail(err, "export: sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return fail(err, "export: close temp file")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fail(err, "export: chmod temp file")
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return fail(err, "export: rename into place")
	}
	committed = true

	return Handle{
		ID:       uuid.NewString(),
		Location: dest,
		Files:    []string{dest},
		Bytes:    len(doc.Data),
	}, nil
}

// WriterSink streams documents to a writer such as stdout.
type WriterSink struct {
	W io.Writer
}

// Write copies doc.Data to the writer in a single call.
func (s *WriterSink) Write(ctx context.Context, doc *Document, fileName string) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return Handle{}, &SinkWriteError{Location: fileName, Err: eris.Wrap(err, "export: writer sink")}
	}
	if doc == nil {
		return Handle{}, &SinkWriteError{Location: fileName, Err: eris.New("export: nil document")}
	}
	n, err := s.W.Write(doc.Data)
	if err != nil {
		return Handle{}, &SinkWriteError{Location: fileName, Err: eris.Wrap(err, "export: write stream")}
	}
	return Handle{ID: uuid.NewString(), Location: "-", Bytes: n}, nil
}
