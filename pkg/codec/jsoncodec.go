// pkg/codec/jsoncodec.go
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	ContentType() string
}

type jsonCodec struct{ strict bool }

var (
	// JSON encodes without HTML escaping and decodes leniently.
	JSON Codec = jsonCodec{}
	// JSONStrict rejects unknown fields and trailing content on decode.
	JSONStrict Codec = jsonCodec{strict: true}
)

func (jsonCodec) Marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (c jsonCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if c.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	if !c.strict {
		return nil
	}
	// Probe for trailing data (must be EOF)
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return fmt.Errorf("json trailing content")
	}
	return nil
}

func (jsonCodec) ContentType() string { return "application/json" }
