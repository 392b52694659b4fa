package engine

import (
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/danieljhkim/viasplit/internal/config"
	"github.com/danieljhkim/viasplit/internal/hash"
	"github.com/danieljhkim/viasplit/internal/schema"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files    map[string][]byte
	perms    map[string]os.FileMode
	writeErr error
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		perms: make(map[string]os.FileMode),
	}
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if fs.writeErr != nil {
		return fs.writeErr
	}
	fs.files[path] = append([]byte(nil), data...)
	fs.perms[path] = perm
	return nil
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, ok := fs.files[path]
	return ok, nil
}

func (fs *testFS) ValidateOutputPath(path string) error {
	return nil
}

const corneLayout = `{
  "name": "Corne",
  "vendorProductId": 1178684161,
  "macros": ["", "{KC_LCTL,KC_C}"],
  "layers": [
    ["KC_A", "KC_B", "KC_C", "KC_D"],
    ["KC_1", "KC_NO", "S(KC_2)", "KC_3"]
  ]
}`

// setupTestEngine creates an engine over an in-memory filesystem holding
// corneLayout at /in.json.
func setupTestEngine(t *testing.T, profiles *config.Config) (*Engine, *testFS) {
	t.Helper()

	validator, err := schema.NewValidator()
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	fs := newTestFS()
	fs.files["/in.json"] = []byte(corneLayout)

	eng := New(fs, hash.NewSHA256Hasher(), validator, profiles, zap.NewNop())
	return eng, fs
}
