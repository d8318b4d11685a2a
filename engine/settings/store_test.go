package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loopSettings struct {
	MaxFPS float64 `json:"maxFPS"`
}

func TestSetThenGetRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := NewStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("app.loop", loopSettings{MaxFPS: 60}))

	var got loopSettings
	found, err := s.Get("app.loop", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, float64(60), got.MaxFPS)
}

func TestGetMissingKeyReportsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := NewStore(path)
	require.NoError(t, err)
	defer s.Close()

	var got loopSettings
	found, err := s.Get("nope", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("app.loop", loopSettings{MaxFPS: 144}))
	require.NoError(t, s.Set("app.other", "value"))
	require.NoError(t, s.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	var got loopSettings
	found, err := reopened.Get("app.loop", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, float64(144), got.MaxFPS)

	var other string
	found, err = reopened.Get("app.other", &other)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "value", other)
}

func TestNewStoreToleratesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	s, err := NewStore(path)
	require.NoError(t, err)
	defer s.Close()

	var got loopSettings
	found, err := s.Get("anything", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path)
	require.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}
