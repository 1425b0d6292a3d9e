package wire

import (
	"fmt"
	"math/bits"
	"strings"
)

// Message type tags. Each tag occupies exactly one bit so that any subset
// of types can be expressed as a Mask. Declaration order assigns the bit;
// a new type claims the next unused bit by extending this block and the
// name table below. Running out of bits fails to compile.
const (
	// Instructs the worker to load the named extension module
	TypeRequireModule Type = 1 << iota
	// Carries a module-directed message with an encoded argument value
	TypeModuleMsg
	// Reports scroll position and geometry changes for one page
	TypeScroll
	// Signals that the controller finished loading its configuration
	TypeConfigLoaded
)

// MaskAny matches every valid message type.
const MaskAny = ^Mask(0)

var typeNames = [...]string{
	"require-module",
	"module-msg",
	"scroll",
	"config-loaded",
}

// Type identifies one message kind on the wire. A valid Type has exactly
// one bit set, and that bit must be assigned in the catalog above.
type Type uint32

func (t Type) Valid() bool {
	return bits.OnesCount32(uint32(t)) == 1 && bits.TrailingZeros32(uint32(t)) < len(typeNames)
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("invalid(%#x)", uint32(t))
	}
	return typeNames[bits.TrailingZeros32(uint32(t))]
}

// Mask is a set of message types, the bitwise OR of their tags. It is a
// distinct type from Type on purpose: a Type travels on the wire, a Mask
// only ever exists in memory to express a consumer's current interest.
type Mask uint32

func MaskOf(types ...Type) Mask {
	var m Mask
	for _, t := range types {
		m |= Mask(t)
	}
	return m
}

func (m Mask) Has(t Type) bool {
	return m&Mask(t) != 0
}

func (m Mask) String() string {
	if m == MaskAny {
		return "any"
	}
	names := make([]string, 0, len(typeNames))
	for i, name := range typeNames {
		if m.Has(Type(1) << i) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
