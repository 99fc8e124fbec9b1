package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFull ensures build metadata renders in the expected format.
func TestFull(t *testing.T) {
	t.Parallel()

	require.Contains(t, Full(), Short())
	require.Contains(t, Full(), "commit:")
}
