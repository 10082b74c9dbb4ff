package writer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test plan:
// 1. New files are written with parent directories created
// 2. skip leaves existing files alone and reports skipped
// 3. force overwrites
// 4. ask: accepted overwrites, declined skips, prompt errors fail the file
// 5. Storage failures surface as ErrWriteFailure with the path
// 6. Running twice with skip is idempotent

type mockConfirmer struct {
	answer    bool
	err       error
	questions []string
}

func (m *mockConfirmer) Confirm(question string) (bool, error) {
	m.questions = append(m.questions, question)
	return m.answer, m.err
}

type mockFileSystem struct {
	statErr      error
	mkdirAllErr  error
	writeFileErr error
	files        map[string]bool
	writes       []string
}

func (m *mockFileSystem) Stat(name string) (os.FileInfo, error) {
	if m.statErr != nil {
		return nil, m.statErr
	}
	if m.files[name] {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func (m *mockFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return m.mkdirAllErr
}

func (m *mockFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.writes = append(m.writes, name)
	return m.writeFileErr
}

func TestWriter_WritesNewFile(t *testing.T) {
	// Test: missing parent directories are created
	dir := t.TempDir()
	path := filepath.Join(dir, "pages", "Products", "components", "columns.tsx")

	w := NewWriter(nil, zerolog.Nop())
	res, err := w.Write(path, []byte("content"), PolicySkip)
	require.NoError(t, err)
	assert.Equal(t, Result{Path: path, Status: StatusWritten}, res)
	assert.Equal(t, "created: "+path, res.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestWriter_Policies(t *testing.T) {
	tests := []struct {
		name       string
		policy     Policy
		confirmer  *mockConfirmer
		wantStatus Status
		wantBytes  string
		wantAsked  bool
	}{
		{name: "skip", policy: PolicySkip, wantStatus: StatusSkipped, wantBytes: "old"},
		{name: "force", policy: PolicyForce, wantStatus: StatusWritten, wantBytes: "new"},
		{
			name:       "ask accepted",
			policy:     PolicyAsk,
			confirmer:  &mockConfirmer{answer: true},
			wantStatus: StatusWritten,
			wantBytes:  "new",
			wantAsked:  true,
		},
		{
			name:       "ask declined",
			policy:     PolicyAsk,
			confirmer:  &mockConfirmer{answer: false},
			wantStatus: StatusSkipped,
			wantBytes:  "old",
			wantAsked:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "product.d.ts")
			require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

			var confirmer Confirmer
			if tt.confirmer != nil {
				confirmer = tt.confirmer
			}
			w := NewWriter(confirmer, zerolog.Nop())

			res, err := w.Write(path, []byte("new"), tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, path, res.Path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBytes, string(data))

			if tt.confirmer != nil {
				assert.Equal(t, tt.wantAsked, len(tt.confirmer.questions) == 1)
				assert.Contains(t, tt.confirmer.questions[0], path)
			}
		})
	}
}

func TestWriter_AskNotPromptedForNewFile(t *testing.T) {
	// Test: ask only prompts when the file exists
	c := &mockConfirmer{}
	path := filepath.Join(t.TempDir(), "index.tsx")

	res, err := NewWriter(c, zerolog.Nop()).Write(path, []byte("x"), PolicyAsk)
	require.NoError(t, err)
	assert.Equal(t, StatusWritten, res.Status)
	assert.Empty(t, c.questions)
}

func TestWriter_AskErrors(t *testing.T) {
	// Test: prompt failure and missing confirmer fail the file without touching it
	fsys := &mockFileSystem{files: map[string]bool{"a.tsx": true}}

	w := NewWriter(&mockConfirmer{err: errors.New("user aborted")}, zerolog.Nop()).WithFileSystem(fsys)
	_, err := w.Write("a.tsx", []byte("x"), PolicyAsk)
	require.ErrorIs(t, err, ErrWriteFailure)
	assert.Contains(t, err.Error(), "user aborted")

	w = NewWriter(nil, zerolog.Nop()).WithFileSystem(fsys)
	_, err = w.Write("a.tsx", []byte("x"), PolicyAsk)
	require.ErrorIs(t, err, ErrWriteFailure)
	assert.Contains(t, err.Error(), "no confirmer")

	assert.Empty(t, fsys.writes)
}

func TestWriter_StorageFailures(t *testing.T) {
	tests := []struct {
		name string
		fsys *mockFileSystem
		want string
	}{
		{name: "stat", fsys: &mockFileSystem{statErr: os.ErrPermission}, want: "permission denied"},
		{name: "mkdir", fsys: &mockFileSystem{mkdirAllErr: errors.New("read-only")}, want: "failed to create directory"},
		{name: "write", fsys: &mockFileSystem{writeFileErr: errors.New("disk full")}, want: "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(nil, zerolog.Nop()).WithFileSystem(tt.fsys)

			_, err := w.Write("out/product.d.ts", []byte("x"), PolicyForce)
			require.ErrorIs(t, err, ErrWriteFailure)

			var we *WriteError
			require.ErrorAs(t, err, &we)
			assert.Equal(t, "out/product.d.ts", we.Path)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriter_SkipIsIdempotent(t *testing.T) {
	// Test: second run with skip writes nothing and leaves bytes unchanged
	dir := t.TempDir()
	path := filepath.Join(dir, "types", "product.d.ts")
	w := NewWriter(nil, zerolog.Nop())

	first, err := w.Write(path, []byte("v1"), PolicySkip)
	require.NoError(t, err)
	assert.Equal(t, StatusWritten, first.Status)

	info, err := os.Stat(path)
	require.NoError(t, err)

	second, err := w.Write(path, []byte("v1"), PolicySkip)
	require.NoError(t, err)
	assert.Equal(t, StatusSkipped, second.Status)
	assert.Equal(t, "skipped: "+path, second.String())

	again, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), again.ModTime())
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{PolicySkip, PolicyForce, PolicyAsk} {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePolicy("sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown overwrite policy")
}
