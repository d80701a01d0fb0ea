package verse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostapdev/teamwheel/internal/dependencies/mocks"
	"github.com/ostapdev/teamwheel/internal/testutil"
)

func newService() (*Service, *mocks.MockRandom) {
	rnd := mocks.NewMockRandom()
	return New(rnd, testutil.NopLogger()), rnd
}

func TestPickEmptyPoolReturnsSentinel(t *testing.T) {
	svc, _ := newService()
	assert.Equal(t, NotFound, svc.Pick())
}

func TestPickUsesRandomIndex(t *testing.T) {
	svc, rnd := newService()
	svc.LoadVerses([]string{"first", "second", "third"})

	rnd.QueueIntn(2, 0)
	assert.Equal(t, "third", svc.Pick())
	assert.Equal(t, "first", svc.Pick())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"verses": ["a", "b"]}`), 0o600))

	svc, _ := newService()
	require.NoError(t, svc.LoadFromFile(path))
	assert.Equal(t, 2, svc.Count())
}

func TestLoadFromFileMissing(t *testing.T) {
	svc, _ := newService()
	assert.Error(t, svc.LoadFromFile(filepath.Join(t.TempDir(), "absent.json")))
}

func TestLoadFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"verses": "not-a-list"}`), 0o600))

	svc, _ := newService()
	assert.Error(t, svc.LoadFromFile(path))
}
