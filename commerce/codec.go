package commerce

import (
	jsoniter "github.com/json-iterator/go"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype carried by storefront calls
// (content-type application/grpc+json).
const CodecName = "json"

var wire = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonCodec lets plain Go request and response structs travel over gRPC.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return wire.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return wire.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
