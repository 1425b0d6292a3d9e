package payload

import (
	"errors"
	"fmt"
	"ipc-toolkit/wire"
)

// ErrBadPayload reports a payload whose bytes do not match the schema of
// its message type.
var ErrBadPayload = errors.New("malformed payload")

// Payload is the typed view over one frame's body. Encode produces
// exactly the bytes the matching Decode accepts; the framing layers
// never look inside.
type Payload interface {
	Type() wire.Type
	Encode() []byte
}

// Decode constructs the typed payload for a received frame.
func Decode(t wire.Type, b []byte) (Payload, error) {
	var (
		p   Payload
		err error
	)
	switch t {
	case wire.TypeRequireModule:
		p, err = DecodeRequireModule(b)
	case wire.TypeModuleMsg:
		p, err = DecodeModuleMsg(b)
	case wire.TypeScroll:
		p, err = DecodeScroll(b)
	case wire.TypeConfigLoaded:
		p, err = DecodeConfigLoaded(b)
	default:
		return nil, fmt.Errorf("%w: %#x", wire.ErrInvalidType, uint32(t))
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ConfigLoaded signals that the controlling process finished loading its
// configuration. It carries no payload.
type ConfigLoaded struct{}

func (ConfigLoaded) Type() wire.Type { return wire.TypeConfigLoaded }

func (ConfigLoaded) Encode() []byte { return nil }

func DecodeConfigLoaded(b []byte) (ConfigLoaded, error) {
	if len(b) != 0 {
		return ConfigLoaded{}, fmt.Errorf("%w: unexpected %d payload bytes", ErrBadPayload, len(b))
	}
	return ConfigLoaded{}, nil
}
