package conv_test

import (
	"testing"

	"github.com/fantasyboard/fb-tui/internal/conv"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	require.Equal(t, 5, conv.Clamp(5, 0, 10))
	require.Equal(t, 0, conv.Clamp(-3, 0, 10))
	require.Equal(t, 10, conv.Clamp(42, 0, 10))
	// Inverted bounds are tolerated.
	require.Equal(t, 5, conv.Clamp(5, 10, 0))
	require.InDelta(t, 1.5, conv.Clamp(2.0, 0.0, 1.5), 0.0001)
}

func TestParseInt(t *testing.T) {
	require.Equal(t, 42, conv.ParseInt("42", -1))
	require.Equal(t, -1, conv.ParseInt("", -1))
	require.Equal(t, -1, conv.ParseInt("-", -1))
	require.Equal(t, -1, conv.ParseInt("12.5", -1))
}
