package registry

import (
	"fmt"
	"net/url"
)

// DefaultBaseURL is the vendor redirect endpoint that serves the latest
// build of a product as a compressed tar archive.
const DefaultBaseURL = "https://download.mozilla.org/"

// ResolveURL composes the download address for a (channel, language,
// architecture) triple against the given base endpoint. It performs no
// network access; all values are drawn from the registry tables and a
// miss on any of them is fatal for the caller.
func ResolveURL(base string, channel Channel, language, arch string) (string, error) {
	if base == "" {
		base = DefaultBaseURL
	}

	product, err := ProductKey(channel)
	if err != nil {
		return "", err
	}

	osKey, err := OSKey(arch)
	if err != nil {
		return "", err
	}

	// The language must exist in the table even though the value goes
	// into the URL verbatim: a miss means the chooser and the registry
	// have diverged.
	if _, err = DisplayName(language); err != nil {
		return "", err
	}

	endpoint, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	query := endpoint.Query()
	query.Set("product", product)
	query.Set("lang", language)
	query.Set("os", osKey)
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}
