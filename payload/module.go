package payload

import (
	"encoding/binary"
	"fmt"
	"ipc-toolkit/wire"
)

// RequireModule asks the peer process to load the named module. The name
// is the whole payload.
type RequireModule struct {
	Name string
}

func (m RequireModule) Type() wire.Type { return wire.TypeRequireModule }

func (m RequireModule) Encode() []byte {
	return []byte(m.Name)
}

func DecodeRequireModule(b []byte) (RequireModule, error) {
	if len(b) == 0 {
		return RequireModule{}, fmt.Errorf("%w: module name is empty", ErrBadPayload)
	}
	return RequireModule{Name: string(b)}, nil
}

// u32 Module index, then the argument bytes
const ModuleMsgHdrSize = 4

// ModuleMsg carries one value from a module on one side to its twin on
// the other. The argument bytes are opaque to the framing layers;
// MarshalValue and UnmarshalValue are the codec both sides agree on.
type ModuleMsg struct {
	Module uint32
	Arg    []byte
}

func (m ModuleMsg) Type() wire.Type { return wire.TypeModuleMsg }

func (m ModuleMsg) Encode() []byte {
	b := make([]byte, ModuleMsgHdrSize+len(m.Arg))
	binary.BigEndian.PutUint32(b[:], m.Module)
	copy(b[ModuleMsgHdrSize:], m.Arg)
	return b
}

func DecodeModuleMsg(b []byte) (ModuleMsg, error) {
	if len(b) < ModuleMsgHdrSize {
		return ModuleMsg{}, fmt.Errorf("%w: module message needs at least %d bytes, got %d", ErrBadPayload, ModuleMsgHdrSize, len(b))
	}
	arg := make([]byte, len(b)-ModuleMsgHdrSize)
	copy(arg, b[ModuleMsgHdrSize:])
	return ModuleMsg{
		Module: binary.BigEndian.Uint32(b[:]),
		Arg:    arg,
	}, nil
}
