// Package registry holds the static tables behind the installer: release
// channels and their vendor product keys, the locale code to display name
// bijection, architecture to vendor OS keys, and the pure URL composition
// over those tables. There is no mutation and no I/O here.
package registry
