package payload

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		require := require.New(t)
		m, err := NewModuleMsg(2, "enable")
		require.Nil(err)

		var s string
		require.Nil(m.Value(&s))
		require.Equal("enable", s)
	})

	t.Run("structured", func(t *testing.T) {
		require := require.New(t)
		type settings struct {
			Enabled bool     `cbor:"enabled"`
			Domains []string `cbor:"domains"`
		}
		want := settings{Enabled: true, Domains: []string{"a.example", "b.example"}}
		m, err := NewModuleMsg(7, want)
		require.Nil(err)

		// Across the wire and back.
		decoded, err := DecodeModuleMsg(m.Encode())
		require.Nil(err)
		require.Equal(uint32(7), decoded.Module)

		var got settings
		require.Nil(decoded.Value(&got))
		require.Equal(want, got)
	})
}
