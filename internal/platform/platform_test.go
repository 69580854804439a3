package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStatsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machine-info")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestFileStatistics(t *testing.T) {
	path := writeStatsFile(t, "# provisioning data\nregion=jp\nserial = ABC123 \n\nmalformed-line\n")
	stats := NewFileStatistics(path)

	t.Run("existing keys", func(t *testing.T) {
		region, ok := stats.MachineStatistic("region")
		assert.True(t, ok)
		assert.Equal(t, "jp", region)

		serial, ok := stats.MachineStatistic("serial")
		assert.True(t, ok)
		assert.Equal(t, "ABC123", serial)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := stats.MachineStatistic("nonexistent")
		assert.False(t, ok)
	})

	t.Run("malformed lines skipped", func(t *testing.T) {
		_, ok := stats.MachineStatistic("malformed-line")
		assert.False(t, ok)
	})
}

func TestFileStatisticsMissingFile(t *testing.T) {
	stats := NewFileStatistics(filepath.Join(t.TempDir(), "does-not-exist"))

	_, ok := stats.MachineStatistic(RegionKey)
	assert.False(t, ok)
}

func awaitComponent(t *testing.T, mgr ComponentManager, name string) (string, error) {
	t.Helper()
	type result struct {
		path string
		err  error
	}
	ch := make(chan result, 1)
	mgr.Load(name, func(path string, err error) {
		ch <- result{path, err}
	})
	select {
	case r := <-ch:
		return r.path, r.err
	case <-time.After(time.Second):
		t.Fatal("component load never replied")
		return "", nil
	}
}

func TestDirComponentManager(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "container-runtime"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "not-a-dir"), []byte("x"), 0o644))

	mgr := NewDirComponentManager(root)

	t.Run("mounted component", func(t *testing.T) {
		path, err := awaitComponent(t, mgr, "container-runtime")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "container-runtime"), path)
	})

	t.Run("missing component", func(t *testing.T) {
		_, err := awaitComponent(t, mgr, "absent")
		assert.Error(t, err)
	})

	t.Run("mount is a file", func(t *testing.T) {
		_, err := awaitComponent(t, mgr, "not-a-dir")
		assert.Error(t, err)
	})
}
