package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLanguageRoundTrip verifies DisplayName and CodeForDisplayName are
// mutual inverses over every entry in the table.
func TestLanguageRoundTrip(t *testing.T) {
	t.Parallel()

	codes := LanguageCodes()
	require.NotEmpty(t, codes)

	for _, code := range codes {
		name, err := DisplayName(code)
		require.NoError(t, err)

		back, err := CodeForDisplayName(name)
		require.NoError(t, err)
		require.Equal(t, code, back)
	}
}

// TestLanguageLookupMiss checks both directions report ErrNotFound.
func TestLanguageLookupMiss(t *testing.T) {
	t.Parallel()

	_, err := DisplayName("xx-YY")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = CodeForDisplayName("Klingon")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestDisplayNamesOrdering ensures alphabetical order with the default
// language always listed first.
func TestDisplayNamesOrdering(t *testing.T) {
	t.Parallel()

	names := DisplayNames()
	require.Len(t, names, len(LanguageCodes()))
	require.Equal(t, "English (US)", names[0])

	for i := 2; i < len(names); i++ {
		require.LessOrEqual(t, names[i-1], names[i])
	}
}

// TestParseChannel accepts registry channels and rejects everything else.
func TestParseChannel(t *testing.T) {
	t.Parallel()

	for _, channel := range Channels() {
		parsed, err := ParseChannel(string(channel))
		require.NoError(t, err)
		require.Equal(t, channel, parsed)
	}

	for _, bad := range []string{"", "Stable", "release", "esr115"} {
		_, err := ParseChannel(bad)
		require.ErrorIs(t, err, ErrUnknownChannel)
	}
}

// TestProductKeys checks every channel maps to a distinct product key.
func TestProductKeys(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})

	for _, channel := range Channels() {
		key, err := ProductKey(channel)
		require.NoError(t, err)
		require.NotEmpty(t, key)

		_, dup := seen[key]
		require.False(t, dup, "duplicate product key %q", key)
		seen[key] = struct{}{}
	}

	_, err := ProductKey(Channel("weekly"))
	require.ErrorIs(t, err, ErrNotFound)
}

// TestOSKey covers the architecture table and free-form misses.
func TestOSKey(t *testing.T) {
	t.Parallel()

	key, err := OSKey(ArchX8664)
	require.NoError(t, err)
	require.Equal(t, "linux64", key)

	key, err = OSKey(ArchX86)
	require.NoError(t, err)
	require.Equal(t, "linux", key)

	_, err = OSKey("sparc")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestHostArch only asserts the result is one of the two known values.
func TestHostArch(t *testing.T) {
	t.Parallel()

	arch := HostArch()
	require.Contains(t, []string{ArchX86, ArchX8664}, arch)
}
