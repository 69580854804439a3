package platform

import (
	"bufio"
	"os"
	"strings"
	"sync"
)

// RegionKey is the machine statistic holding the device region code.
const RegionKey = "region"

// Statistics exposes the platform key/value statistics store.
type Statistics interface {
	// MachineStatistic returns the value for key, reporting whether the
	// key exists.
	MachineStatistic(key string) (string, bool)
}

// FileStatistics reads statistics from a key=value file, one pair per
// line. The file is parsed once on first access; devices write it at
// provisioning time and never change it afterwards.
type FileStatistics struct {
	path string

	once   sync.Once
	values map[string]string
}

// NewFileStatistics creates a file-backed statistics store.
func NewFileStatistics(path string) *FileStatistics {
	return &FileStatistics{path: path}
}

// MachineStatistic implements Statistics.
func (f *FileStatistics) MachineStatistic(key string) (string, bool) {
	f.once.Do(f.load)
	v, ok := f.values[key]
	return v, ok
}

func (f *FileStatistics) load() {
	f.values = make(map[string]string)

	file, err := os.Open(f.path)
	if err != nil {
		// Missing statistics file is a normal condition on dev machines;
		// callers apply their own defaults.
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		f.values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
}

// MapStatistics is an in-memory Statistics implementation for tests.
type MapStatistics map[string]string

// MachineStatistic implements Statistics.
func (m MapStatistics) MachineStatistic(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
