package codec

// ICodec is the interface for all snapshot codecs
type ICodec interface {
	// Marshal encodes a value into a byte array
	// It returns the encoded byte array and an error if any
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes a byte array into a value
	// It takes a byte array and a pointer to the target value as parameters
	// It returns an error if any
	Unmarshal(b []byte, v any) error
}
