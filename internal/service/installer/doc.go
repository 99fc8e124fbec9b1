// Package installer downloads a browser archive into a private temporary
// directory under the data root, extracts it there, and atomically swaps
// the extracted distribution into the per-channel install directory.
// Progress for both phases is surfaced through the dialog bridge; a user
// cancel at either phase unwinds without touching the destination.
package installer
