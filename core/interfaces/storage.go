// ABOUTME: Storage interfaces for persisting pipeline output
// ABOUTME: Defines contracts for writing text files and the digest

package interfaces

// TextStore defines the interface for flat-file persistence
type TextStore interface {
	// EnsureDir creates the directory and its parents if missing
	EnsureDir(dir string) error

	// WriteText writes content to path, replacing any existing file
	WriteText(path string, content string) error
}
