// Package state saves and restores the one value that outlives a surface:
// the rotation angle.
package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/types/known/structpb"

	"twotriangles/common/message"
)

const AngleKey = "angle"

var ErrNoAngle = errors.New("bundle has no angle")

func Encode(angle float32) ([]byte, error) {
	return message.EncodeBundle(map[string]any{AngleKey: float64(angle)})
}

func Decode(data []byte) (float32, error) {
	fields, err := message.DecodeBundle(data)
	if err != nil {
		return 0, err
	}
	v, ok := fields[AngleKey]
	if !ok {
		return 0, ErrNoAngle
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("angle is not a number: %v", v)
	}
	return float32(n.NumberValue), nil
}

func Save(path string, angle float32) error {
	data, err := Encode(angle)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load returns the saved angle. ok is false when nothing was saved yet.
func Load(path string) (angle float32, ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	angle, err = Decode(data)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", path, err)
	}
	return angle, true, nil
}

// DefaultPath is the per-user file the desktop host keeps the angle in.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "twotriangles", "state.pb"), nil
}
