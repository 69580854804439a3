package containercredits

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenbrowser/lumen/backend/internal/content"
	"github.com/lumenbrowser/lumen/backend/internal/infrastructure/logging"
	"github.com/lumenbrowser/lumen/backend/internal/platform"
	"github.com/lumenbrowser/lumen/backend/internal/resources"
	"github.com/lumenbrowser/lumen/backend/internal/worker"
)

func newSource(t *testing.T, components platform.ComponentManager) *Source {
	t.Helper()
	pool := worker.New(1, 4, nil)
	t.Cleanup(pool.Close)
	return New("container-runtime", components, resources.MustLoad(), "en-US", pool, logging.NewNop(), nil)
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

func TestServesMountedCredits(t *testing.T) {
	mount := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(mount, "about_os_credits.html"), []byte("<html>container credits</html>"), 0o644))
	src := newSource(t, &platform.StaticComponentManager{Path: mount})

	assert.Equal(t, "<html>container credits</html>", string(serve(t, src, "")))
}

func TestMountFailurePlaceholder(t *testing.T) {
	src := newSource(t, &platform.StaticComponentManager{Err: errors.New("download failed")})

	body := serve(t, src, "")
	assert.Contains(t, string(body), "after the Linux container has been installed")
}

func TestMissingCreditsFilePlaceholder(t *testing.T) {
	src := newSource(t, &platform.StaticComponentManager{Path: t.TempDir()})

	body := serve(t, src, "")
	assert.Contains(t, string(body), "after the Linux container has been installed")
}

func TestNilComponentManagerPlaceholder(t *testing.T) {
	src := newSource(t, nil)

	body := serve(t, src, "")
	assert.Contains(t, string(body), "after the Linux container has been installed")
}

func TestKeyboardUtilsServedInline(t *testing.T) {
	src := newSource(t, nil)

	assert.Contains(t, string(serve(t, src, content.KeyboardUtilsJSPath)), "keydown")
}

func TestCSPSuppressed(t *testing.T) {
	src := newSource(t, nil)

	assert.False(t, src.AddContentSecurityPolicy())
}
