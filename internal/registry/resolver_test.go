package registry

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResolveURLQueryValues checks that for every valid (channel,
// language, arch) triple the query parameters exactly match the mapped
// registry values.
func TestResolveURLQueryValues(t *testing.T) {
	t.Parallel()

	languages := []string{"en-US", "de", "pt-BR"}
	architectures := []string{ArchX86, ArchX8664}

	for _, channel := range Channels() {
		for _, language := range languages {
			for _, arch := range architectures {
				resolved, err := ResolveURL("", channel, language, arch)
				require.NoError(t, err)

				parsed, err := url.Parse(resolved)
				require.NoError(t, err)
				require.Equal(t, "download.mozilla.org", parsed.Host)

				wantProduct, err := ProductKey(channel)
				require.NoError(t, err)

				wantOS, err := OSKey(arch)
				require.NoError(t, err)

				query := parsed.Query()
				require.Equal(t, wantProduct, query.Get("product"))
				require.Equal(t, language, query.Get("lang"))
				require.Equal(t, wantOS, query.Get("os"))
			}
		}
	}
}

// TestResolveURLCustomBase keeps a mirror's path and scheme intact.
func TestResolveURLCustomBase(t *testing.T) {
	t.Parallel()

	resolved, err := ResolveURL("http://mirror.local/pub/redirect", ChannelBeta, "fr", ArchX86)
	require.NoError(t, err)

	parsed, err := url.Parse(resolved)
	require.NoError(t, err)
	require.Equal(t, "mirror.local", parsed.Host)
	require.Equal(t, "/pub/redirect", parsed.Path)
	require.Equal(t, "firefox-beta-latest", parsed.Query().Get("product"))
}

// TestResolveURLLookupFailures propagates registry misses unchanged.
func TestResolveURLLookupFailures(t *testing.T) {
	t.Parallel()

	_, err := ResolveURL("", Channel("weekly"), "en-US", ArchX8664)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = ResolveURL("", ChannelStable, "xx-YY", ArchX8664)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = ResolveURL("", ChannelStable, "en-US", "mips")
	require.ErrorIs(t, err, ErrNotFound)
}
