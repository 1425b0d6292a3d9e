package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require := require.New(t)
		for _, mt := range []Type{TypeRequireModule, TypeModuleMsg, TypeScroll, TypeConfigLoaded} {
			require.True(mt.Valid(), "type %#x", uint32(mt))
		}
	})

	t.Run("invalid", func(t *testing.T) {
		require := require.New(t)
		require.False(Type(0).Valid())
		require.False((TypeRequireModule | TypeModuleMsg).Valid())
		require.False(Type(1 << 10).Valid())
		require.False(Type(1 << 31).Valid())
	})

	t.Run("string", func(t *testing.T) {
		require := require.New(t)
		require.Equal("require-module", TypeRequireModule.String())
		require.Equal("module-msg", TypeModuleMsg.String())
		require.Equal("scroll", TypeScroll.String())
		require.Equal("config-loaded", TypeConfigLoaded.String())
	})
}

func TestMask(t *testing.T) {
	t.Run("maskOf", func(t *testing.T) {
		require := require.New(t)
		m := MaskOf(TypeScroll, TypeConfigLoaded)
		require.True(m.Has(TypeScroll))
		require.True(m.Has(TypeConfigLoaded))
		require.False(m.Has(TypeRequireModule))
		require.False(m.Has(TypeModuleMsg))
	})

	t.Run("any", func(t *testing.T) {
		require := require.New(t)
		for _, mt := range []Type{TypeRequireModule, TypeModuleMsg, TypeScroll, TypeConfigLoaded} {
			require.True(MaskAny.Has(mt), "type %s", mt)
		}
	})

	t.Run("disjoint", func(t *testing.T) {
		require := require.New(t)
		m1 := MaskOf(TypeRequireModule)
		m2 := MaskOf(TypeScroll)
		require.Zero(m1 & m2)
	})
}
