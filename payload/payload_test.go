package payload

import (
	"ipc-toolkit/wire"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigLoaded(t *testing.T) {
	require := require.New(t)
	require.Nil(ConfigLoaded{}.Encode())

	_, err := DecodeConfigLoaded(nil)
	require.Nil(err)
	_, err = DecodeConfigLoaded([]byte{1})
	require.ErrorIs(err, ErrBadPayload)
}

func TestDecode(t *testing.T) {
	t.Run("byType", func(t *testing.T) {
		require := require.New(t)
		for _, want := range []Payload{
			RequireModule{Name: "adblock"},
			ModuleMsg{Module: 1, Arg: []byte("x")},
			Scroll{V: 640, PageID: 2, Kind: ScrollDocResize},
			ConfigLoaded{},
		} {
			got, err := Decode(want.Type(), want.Encode())
			require.Nil(err)
			require.Equal(want, got)
		}
	})

	t.Run("invalidType", func(t *testing.T) {
		require := require.New(t)
		_, err := Decode(wire.Type(0), nil)
		require.ErrorIs(err, wire.ErrInvalidType)
	})

	t.Run("badBody", func(t *testing.T) {
		require := require.New(t)
		_, err := Decode(wire.TypeScroll, []byte("short"))
		require.ErrorIs(err, ErrBadPayload)
	})
}
