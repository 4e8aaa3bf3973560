package multipart

import (
	"encoding/json"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-httpcodec/pkg/codec"
)

// Text consumes a part body as a plain string.
func Text() codec.Codec[[]byte, string] {
	return codec.String()
}

// JSON consumes a part body as a JSON document decoded into T.
func JSON[T any]() codec.Codec[[]byte, T] {
	return codec.ConvertFunc(codec.Rest(),
		func(b []byte) (T, error) {
			var out T
			err := json.Unmarshal(b, &out)
			return out, err
		},
		func(out T) ([]byte, error) {
			return json.Marshal(out)
		},
	)
}

// XML consumes a part body as an XML document.
func XML() codec.Codec[[]byte, *etree.Document] {
	return codec.ConvertFunc(codec.Rest(),
		func(b []byte) (*etree.Document, error) {
			doc := etree.NewDocument()
			if err := doc.ReadFromBytes(b); err != nil {
				return nil, err
			}
			return doc, nil
		},
		func(doc *etree.Document) ([]byte, error) {
			return doc.WriteToBytes()
		},
	)
}
