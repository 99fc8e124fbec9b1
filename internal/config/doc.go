// Package config resolves the runtime configuration of the launcher: the
// per-user data root, the optional settings.yaml under it, and the
// FF_CHANNEL / FF_ARCH / FF_LOG_LEVEL environment overrides. Environment
// always wins over the file, the file over built-in defaults.
package config
