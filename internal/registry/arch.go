package registry

import (
	"fmt"
	"runtime"
	"strings"
)

// Architectures with dedicated vendor OS keys.
const (
	ArchX86   = "x86"
	ArchX8664 = "x86_64"
)

// osKeys maps architecture names to the vendor OS identifiers used in
// download URLs.
var osKeys = map[string]string{
	ArchX86:   "linux",
	ArchX8664: "linux64",
}

// OSKey returns the vendor OS identifier for an architecture.
// Architecture strings are not validated anywhere upstream, so a lookup
// miss here is the first place a bogus FF_ARCH override surfaces.
func OSKey(arch string) (string, error) {
	key, ok := osKeys[arch]
	if !ok {
		return "", fmt.Errorf("architecture %q: %w", arch, ErrNotFound)
	}

	return key, nil
}

// HostArch infers the architecture from the build target: anything
// reporting a 64-bit class maps to x86_64, everything else to x86.
func HostArch() string {
	if strings.Contains(runtime.GOARCH, "64") {
		return ArchX8664
	}

	return ArchX86
}
