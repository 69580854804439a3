// Package platform abstracts host services that differ per target:
// the machine statistics store and the dynamic component manager.
//
// Production builds use the file-backed and directory-backed
// implementations; tests substitute the in-memory ones. Handlers depend
// only on the interfaces, so platform selection happens once at startup
// instead of being scattered through page code.
package platform
