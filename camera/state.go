package camera

import (
	"math"
	"sync/atomic"
)

type Orientation int32

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// OrientationOf treats a wider-than-tall surface as landscape.
func OrientationOf(width, height int) Orientation {
	if width > height {
		return Landscape
	}
	return Portrait
}

// Limits are the near/far clip planes for an orientation. They also bound
// the camera eye distance.
type Limits struct {
	Near, Far float32
}

var (
	PortraitLimits  = Limits{Near: 1.5, Far: 12}
	LandscapeLimits = Limits{Near: 2.5, Far: 9}
)

func LimitsFor(o Orientation) Limits {
	if o == Landscape {
		return LandscapeLimits
	}
	return PortraitLimits
}

const DefaultEyeDistance float32 = 3

// State is the session state shared between the input goroutine and the
// render goroutine. Angle and eye distance are written only by input;
// orientation is written only by the renderer when the surface changes.
// Fields are independent atomics; no invariant spans two of them.
type State struct {
	angle       atomic.Uint32
	eyeDistance atomic.Uint32
	orientation atomic.Int32
}

func NewState() *State {
	s := &State{}
	s.SetEyeDistance(DefaultEyeDistance)
	return s
}

// Angle is the rotation in degrees. It is never wrapped.
func (s *State) Angle() float32 {
	return math.Float32frombits(s.angle.Load())
}

func (s *State) SetAngle(deg float32) {
	s.angle.Store(math.Float32bits(deg))
}

func (s *State) EyeDistance() float32 {
	return math.Float32frombits(s.eyeDistance.Load())
}

func (s *State) SetEyeDistance(d float32) {
	s.eyeDistance.Store(math.Float32bits(d))
}

func (s *State) Orientation() Orientation {
	return Orientation(s.orientation.Load())
}

func (s *State) SetOrientation(o Orientation) {
	s.orientation.Store(int32(o))
}
