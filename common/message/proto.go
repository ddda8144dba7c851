package message

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func Encode(msg proto.Message) ([]byte, error) {
	data, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", msg, err)
	}
	return data, nil
}

func Decode(data []byte, msg proto.Message) error {
	if err := proto.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("decode %T: %w", msg, err)
	}
	return nil
}

// EncodeBundle packs a flat key/value bundle into a protobuf Struct.
func EncodeBundle(values map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(values)
	if err != nil {
		return nil, fmt.Errorf("build bundle: %w", err)
	}
	return Encode(s)
}

func DecodeBundle(data []byte) (map[string]*structpb.Value, error) {
	s := &structpb.Struct{}
	if err := Decode(data, s); err != nil {
		return nil, err
	}
	return s.GetFields(), nil
}
