package payload

import (
	"github.com/fxamacker/cbor/v2"
)

// MarshalValue encodes an arbitrary value into argument bytes for a
// module message.
func MarshalValue(v interface{}) ([]byte, error) {
	return cbor.Marshal(v)
}

// UnmarshalValue decodes argument bytes produced by MarshalValue.
func UnmarshalValue(b []byte, v interface{}) error {
	return cbor.Unmarshal(b, v)
}

// NewModuleMsg packs a value into a module message.
func NewModuleMsg(module uint32, v interface{}) (ModuleMsg, error) {
	arg, err := MarshalValue(v)
	if err != nil {
		return ModuleMsg{}, err
	}
	return ModuleMsg{Module: module, Arg: arg}, nil
}

// Value decodes the message argument into out.
func (m ModuleMsg) Value(out interface{}) error {
	return UnmarshalValue(m.Arg, out)
}
