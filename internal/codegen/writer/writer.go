// Package writer persists rendered artifacts under an explicit overwrite policy and decides
// where each artifact of a model lives.
package writer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Policy decides what happens when the destination file already exists
type Policy int

const (
	// PolicySkip never touches an existing file
	PolicySkip Policy = iota
	// PolicyForce always writes
	PolicyForce
	// PolicyAsk asks the Confirmer before overwriting
	PolicyAsk
)

var policyNames = map[Policy]string{
	PolicySkip:  "skip",
	PolicyForce: "force",
	PolicyAsk:   "ask",
}

// String returns the config spelling of the policy
func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses "skip", "force" or "ask"
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return PolicySkip, fmt.Errorf("unknown overwrite policy %q (supported: skip, force, ask)", s)
}

// Status is the outcome of a write that did not fail
type Status int

const (
	StatusWritten Status = iota
	StatusSkipped
)

// String returns the word used in status lines
func (s Status) String() string {
	if s == StatusSkipped {
		return "skipped"
	}
	return "created"
}

// Result reports what happened to one destination path
type Result struct {
	Path   string
	Status Status
}

// String formats the result as a status line, e.g. "created: resources/js/types/product.d.ts"
func (r Result) String() string {
	return fmt.Sprintf("%s: %s", r.Status, r.Path)
}

// ErrWriteFailure is matched by every error the writer returns for a file it could not persist
var ErrWriteFailure = errors.New("write failure")

// WriteError carries the path that could not be written
type WriteError struct {
	Path  string
	Cause error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrWriteFailure
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailure
}

// FileSystem is the storage boundary used by the writer
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Confirmer asks the user a yes/no question. It blocks until answered.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

type osFileSystem struct{}

func (osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Writer writes artifacts to disk
type Writer struct {
	filesystem FileSystem
	confirmer  Confirmer
	logger     zerolog.Logger
}

// NewWriter creates a writer on the OS file system. confirmer may be nil when
// PolicyAsk is never used.
func NewWriter(confirmer Confirmer, logger zerolog.Logger) *Writer {
	return &Writer{
		filesystem: osFileSystem{},
		confirmer:  confirmer,
		logger:     logger.With().Str("component", "writer").Logger(),
	}
}

// WithFileSystem replaces the storage boundary
func (w *Writer) WithFileSystem(filesystem FileSystem) *Writer {
	w.filesystem = filesystem
	return w
}

// Write persists content at path according to policy. An existing file that is kept
// is reported as StatusSkipped, never as an error.
func (w *Writer) Write(path string, content []byte, policy Policy) (Result, error) {
	exists, err := w.exists(path)
	if err != nil {
		return Result{}, &WriteError{Path: path, Cause: err}
	}

	if exists {
		switch policy {
		case PolicySkip:
			w.logger.Debug().Str("path", path).Msg("file exists, skipping")
			return Result{Path: path, Status: StatusSkipped}, nil
		case PolicyAsk:
			overwrite, err := w.confirm(path)
			if err != nil {
				return Result{}, &WriteError{Path: path, Cause: err}
			}
			if !overwrite {
				w.logger.Debug().Str("path", path).Msg("overwrite declined")
				return Result{Path: path, Status: StatusSkipped}, nil
			}
		}
		w.logger.Debug().Str("path", path).Str("policy", policy.String()).Msg("overwriting file")
	}

	if err := w.filesystem.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Result{}, &WriteError{Path: path, Cause: fmt.Errorf("failed to create directory: %w", err)}
	}
	if err := w.filesystem.WriteFile(path, content, 0644); err != nil {
		return Result{}, &WriteError{Path: path, Cause: err}
	}

	return Result{Path: path, Status: StatusWritten}, nil
}

func (w *Writer) exists(path string) (bool, error) {
	_, err := w.filesystem.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (w *Writer) confirm(path string) (bool, error) {
	if w.confirmer == nil {
		return false, errors.New("overwrite policy is ask but no confirmer is configured")
	}
	ok, err := w.confirmer.Confirm(fmt.Sprintf("%s already exists, do you want to overwrite it?", path))
	if err != nil {
		return false, fmt.Errorf("failed to confirm overwrite: %w", err)
	}
	return ok, nil
}
