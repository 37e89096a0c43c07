package codec

import (
	"bytes"
	"encoding/gob"
)

// NewGOBCodec creates a new codec using Go's binary gob format
func NewGOBCodec() ICodec {
	return &gobCodecImpl{}
}

// gobCodecImpl implements the ICodec interface using gob encoding
type gobCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.ICodec)
// --------------------------------------------------------------------------

func (g gobCodecImpl) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g gobCodecImpl) Unmarshal(b []byte, v any) error {
	buf := bytes.NewBuffer(b)
	dec := gob.NewDecoder(buf)
	return dec.Decode(v)
}
