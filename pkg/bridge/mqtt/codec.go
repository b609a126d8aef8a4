package mqtt

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/protobuf/proto"

	pb "github.com/robotalks/sat.go/pkg/proto/sat/v1"
)

// Payload formats of telemetry messages.
const (
	FormatProtobuf = "protobuf"
	FormatCBOR     = "cbor"
)

// Codec encodes and decodes telemetry messages.
type Codec interface {
	Format() string
	Encode(*pb.Telemetry) ([]byte, error)
	Decode([]byte) (*pb.Telemetry, error)
}

// CodecFor returns the codec of a format.
func CodecFor(format string) (Codec, error) {
	switch format {
	case FormatProtobuf, "":
		return protobufCodec{}, nil
	case FormatCBOR:
		return cborCodec{}, nil
	}
	return nil, fmt.Errorf("unknown payload format %q", format)
}

type protobufCodec struct{}

func (protobufCodec) Format() string { return FormatProtobuf }

func (protobufCodec) Encode(msg *pb.Telemetry) ([]byte, error) {
	return proto.Marshal(msg)
}

func (protobufCodec) Decode(data []byte) (*pb.Telemetry, error) {
	msg := &pb.Telemetry{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

type cborCodec struct{}

func (cborCodec) Format() string { return FormatCBOR }

func (cborCodec) Encode(msg *pb.Telemetry) ([]byte, error) {
	return cbor.Marshal(msg)
}

func (cborCodec) Decode(data []byte) (*pb.Telemetry, error) {
	msg := &pb.Telemetry{}
	if err := cbor.Unmarshal(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
