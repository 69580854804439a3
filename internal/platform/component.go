package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ComponentCallback receives the mount path of a loaded component, or an
// error when the component could not be made available. It is invoked
// exactly once.
type ComponentCallback func(mountPath string, err error)

// ComponentManager mounts dynamically downloaded components by name.
type ComponentManager interface {
	Load(name string, reply ComponentCallback)
}

// DirComponentManager resolves components as subdirectories of a root
// mount directory. A component is "mounted" when its directory exists;
// the asynchronous delivery mirrors the platform component service, which
// may download the component before answering.
type DirComponentManager struct {
	root string
}

// NewDirComponentManager creates a directory-backed component manager.
func NewDirComponentManager(root string) *DirComponentManager {
	return &DirComponentManager{root: root}
}

// Load implements ComponentManager. The reply is delivered on a separate
// goroutine, never synchronously from Load.
func (d *DirComponentManager) Load(name string, reply ComponentCallback) {
	go func() {
		mount := filepath.Join(d.root, name)
		info, err := os.Stat(mount)
		if err != nil {
			reply("", fmt.Errorf("component %q not mounted: %w", name, err))
			return
		}
		if !info.IsDir() {
			reply("", fmt.Errorf("component %q mount is not a directory", name))
			return
		}
		reply(mount, nil)
	}()
}

// StaticComponentManager answers every load with a fixed result. Used in
// tests and on platforms without a component service.
type StaticComponentManager struct {
	Path string
	Err  error
}

// Load implements ComponentManager.
func (s *StaticComponentManager) Load(name string, reply ComponentCallback) {
	go reply(s.Path, s.Err)
}
