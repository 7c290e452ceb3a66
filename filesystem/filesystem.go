// Package filesystem provides a swappable abstraction layer for all filesystem operations.
//
// Every read and write of the listing cache, logs and config goes through API(),
// so tests can run against an in-memory backend.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend for unit tests.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// SetReadOnly wraps the current backend so every write fails.
// Used to exercise cache write failures.
func SetReadOnly() {
	backend = afero.Afero{Fs: afero.NewReadOnlyFs(backend.Fs)}
}
