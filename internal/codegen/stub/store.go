package stub

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Version is the embedded stub set shipped with the binary
const Version = "v1"

//go:embed stubs
var stubsFS embed.FS

// ErrTemplateMissing is returned when no layer of a store has the requested stub
var ErrTemplateMissing = errors.New("template missing")

// Store supplies stub text by id
type Store interface {
	Get(id string) (string, error)
}

// FSStore looks a stub up in each layer in turn; the first layer holding "<id>.stub" wins.
type FSStore struct {
	layers []fs.FS
}

// NewFSStore creates a store over the given layers, highest priority first
func NewFSStore(layers ...fs.FS) *FSStore {
	return &FSStore{layers: layers}
}

// NewStore returns the embedded stub set, optionally overlaid by a directory of
// user-customized stubs with the same relative layout.
func NewStore(overrideDir string) *FSStore {
	var layers []fs.FS
	if overrideDir != "" {
		layers = append(layers, os.DirFS(overrideDir))
	}
	layers = append(layers, Embedded())
	return NewFSStore(layers...)
}

// Embedded returns the built-in stub set rooted at its version directory
func Embedded() fs.FS {
	sub, err := fs.Sub(stubsFS, "stubs/"+Version)
	if err != nil {
		panic(fmt.Sprintf("embedded stubs: %v", err))
	}
	return sub
}

// Get returns the text of stub id
func (s *FSStore) Get(id string) (string, error) {
	name := strings.TrimPrefix(id, "/") + ".stub"

	for _, layer := range s.layers {
		data, err := fs.ReadFile(layer, name)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read template %s: %w", id, err)
		}
	}

	return "", fmt.Errorf("%w: %s", ErrTemplateMissing, id)
}
