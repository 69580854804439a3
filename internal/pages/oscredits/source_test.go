package oscredits

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/logging"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
	"github.com/lumenbrowser/lumen/backend/internal/worker"
)

func newSource(t *testing.T, creditsPath string) *Source {
	t.Helper()
	pool := worker.New(1, 4, nil)
	t.Cleanup(pool.Close)
	return New(creditsPath, resources.MustLoad(), pool, logging.NewNop(), nil)
}

func serve(t *testing.T, src *Source, path string) []byte {
	t.Helper()
	ch := make(chan []byte, 1)
	src.StartRequest(path, func(b []byte) { ch <- b })
	select {
	case body := <-ch:
		return body
	case <-time.After(2 * time.Second):
		t.Fatal("no reply")
		return nil
	}
}

func TestServesDiskCredits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "os_credits.html")
	require.NoError(t, os.WriteFile(path, []byte("<html>full roll-up</html>"), 0o644))
	src := newSource(t, path)

	assert.Equal(t, "<html>full roll-up</html>", string(serve(t, src, "")))
}

func TestMissingFileFallsBackToBundle(t *testing.T) {
	src := newSource(t, filepath.Join(t.TempDir(), "absent.html"))

	body := serve(t, src, "")
	assert.Contains(t, string(body), "Operating system credits")
}

func TestKeyboardUtilsServedInline(t *testing.T) {
	src := newSource(t, filepath.Join(t.TempDir(), "absent.html"))

	body := serve(t, src, content.KeyboardUtilsJSPath)
	assert.Contains(t, string(body), "keydown")
}

func TestCSPSuppressed(t *testing.T) {
	src := newSource(t, "unused")

	assert.False(t, src.AddContentSecurityPolicy())
}
