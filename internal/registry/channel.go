package registry

import (
	"errors"
	"fmt"
)

// Channel is a release track of the browser distribution.
type Channel string

// Release channels known to the download endpoint.
const (
	ChannelStable  Channel = "stable"
	ChannelBeta    Channel = "beta"
	ChannelDev     Channel = "dev"
	ChannelNightly Channel = "nightly"
	ChannelESR     Channel = "esr"
)

var (
	// ErrUnknownChannel is returned when an externally supplied channel
	// string is not in the registry.
	ErrUnknownChannel = errors.New("unknown release channel")

	// ErrNotFound is returned by lookups that miss a registry table.
	// It indicates an inconsistency in static data rather than bad user
	// input: user-facing choices are constrained to valid entries.
	ErrNotFound = errors.New("not found in registry")
)

// productKeys maps channels to the vendor product identifiers understood
// by the download endpoint.
var productKeys = map[Channel]string{
	ChannelStable:  "firefox-latest",
	ChannelBeta:    "firefox-beta-latest",
	ChannelDev:     "firefox-devedition-latest",
	ChannelNightly: "firefox-nightly-latest",
	ChannelESR:     "firefox-esr-latest",
}

// channelOrder fixes the display order for chooser combos.
var channelOrder = []Channel{
	ChannelStable,
	ChannelBeta,
	ChannelDev,
	ChannelNightly,
	ChannelESR,
}

// ParseChannel validates an externally supplied channel string.
func ParseChannel(s string) (Channel, error) {
	c := Channel(s)
	if _, ok := productKeys[c]; !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownChannel)
	}

	return c, nil
}

// ProductKey returns the vendor product identifier for a channel.
func ProductKey(c Channel) (string, error) {
	key, ok := productKeys[c]
	if !ok {
		return "", fmt.Errorf("channel %q: %w", string(c), ErrNotFound)
	}

	return key, nil
}

// Channels returns all known channels in display order.
func Channels() []Channel {
	result := make([]Channel, len(channelOrder))
	copy(result, channelOrder)

	return result
}
