package resources

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
)

//go:embed assets
var assets embed.FS

// dataFiles maps resource IDs to embedded asset paths. Entries ending in
// .gz are decompressed at load time.
var dataFiles = map[DataID]string{
	DataCreditsHTML:     "assets/credits.html.gz",
	DataCreditsJS:       "assets/credits.js",
	DataKeyboardUtilsJS: "assets/keyboard_utils.js",
	DataOSCreditsHTML:   "assets/os_credits.html",
}

// Bundle serves compiled-in data and string resources. All contents are
// materialized at load time, so lookups never fail at request time.
type Bundle struct {
	data map[DataID][]byte
}

// Load reads every embedded asset into memory, decompressing gzip-packed
// entries.
func Load() (*Bundle, error) {
	b := &Bundle{data: make(map[DataID][]byte, len(dataFiles))}
	for id, path := range dataFiles {
		raw, err := assets.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("resource %d: read %s: %w", id, path, err)
		}
		if strings.HasSuffix(path, ".gz") {
			raw, err = gunzip(raw)
			if err != nil {
				return nil, fmt.Errorf("resource %d: decompress %s: %w", id, path, err)
			}
		}
		b.data[id] = raw
	}
	return b, nil
}

// MustLoad loads the bundle or panics. Bundled assets are compiled in, so
// a failure here is a build defect.
func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// Data returns the bytes for a data resource, or nil for unknown IDs.
func (b *Bundle) Data(id DataID) []byte {
	return b.data[id]
}

// Has reports whether a data resource exists.
func (b *Bundle) Has(id DataID) bool {
	_, ok := b.data[id]
	return ok
}

// DetectMime sniffs the content type of a data resource. Unknown IDs
// report application/octet-stream.
func (b *Bundle) DetectMime(id DataID) string {
	data, ok := b.data[id]
	if !ok {
		return "application/octet-stream"
	}
	return mimetype.Detect(data).String()
}

func gunzip(raw []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
