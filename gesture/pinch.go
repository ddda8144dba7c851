package gesture

import (
	"github.com/chewxy/math32"
)

// ScaleListener receives pinch gestures. Controller implements it.
type ScaleListener interface {
	OnScaleBegin()
	OnScale(factor float32) bool
	OnScaleEnd()
}

type TouchType int

const (
	TouchBegin TouchType = iota
	TouchMove
	TouchEnd
)

// minSpan keeps two nearly coincident pointers from producing huge factors.
const minSpan float32 = 1

// PinchDetector derives incremental scale factors from raw multi-pointer
// touches: a pinch is active while at least two pointers are down, and each
// move reports the ratio of the current pointer span to the previous one.
type PinchDetector struct {
	l        ScaleListener
	pointers map[int64][2]float32
	prevSpan float32
	active   bool
}

func NewPinchDetector(l ScaleListener) *PinchDetector {
	return &PinchDetector{l: l, pointers: map[int64][2]float32{}}
}

func (d *PinchDetector) InProgress() bool {
	return d.active
}

func (d *PinchDetector) Touch(id int64, ty TouchType, x, y float32) {
	switch ty {
	case TouchBegin:
		d.pointers[id] = [2]float32{x, y}
		if d.active {
			// a new finger changes the span; start measuring from here
			d.prevSpan = d.span()
			return
		}
		d.maybeBegin()
	case TouchMove:
		if _, ok := d.pointers[id]; !ok {
			return
		}
		d.pointers[id] = [2]float32{x, y}
		if !d.active {
			d.maybeBegin()
			return
		}
		cur := d.span()
		if d.prevSpan < minSpan || cur < minSpan {
			// pointers coincide; measure from the next usable span
			d.prevSpan = cur
			return
		}
		if d.l.OnScale(cur / d.prevSpan) {
			d.prevSpan = cur
		}
	case TouchEnd:
		delete(d.pointers, id)
		if !d.active {
			return
		}
		if len(d.pointers) < 2 {
			d.active = false
			d.prevSpan = 0
			d.l.OnScaleEnd()
			return
		}
		d.prevSpan = d.span()
	}
}

func (d *PinchDetector) maybeBegin() {
	if len(d.pointers) < 2 {
		return
	}
	span := d.span()
	if span < minSpan {
		return
	}
	d.active = true
	d.prevSpan = span
	d.l.OnScaleBegin()
}

// span is twice the mean distance of the pointers from their centroid; for
// two pointers it is the distance between them.
func (d *PinchDetector) span() float32 {
	var cx, cy float32
	for _, p := range d.pointers {
		cx += p[0]
		cy += p[1]
	}
	n := float32(len(d.pointers))
	cx, cy = cx/n, cy/n

	var sum float32
	for _, p := range d.pointers {
		sum += math32.Hypot(p[0]-cx, p[1]-cy)
	}
	return 2 * sum / n
}
