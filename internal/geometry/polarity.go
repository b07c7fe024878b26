package geometry

import (
	"strconv"
	"strings"
)

// Polarity is the direction of the source model's shared axial frame.
type Polarity int

const (
	// TailToNose means positions increase from tail toward nose; aft is -Z.
	TailToNose Polarity = iota + 1
	// NoseToTail means positions increase from nose toward tail; aft is +Z.
	NoseToTail
)

// ParsePolarity reads the source model's coordinate-system tag.
// There is no default: anything other than the two known tags is a data error.
func ParsePolarity(tag string) (Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "tail_to_nose":
		return TailToNose, nil
	case "nose_to_tail":
		return NoseToTail, nil
	}
	return 0, &DataError{
		Component: "rocket",
		Field:     "coordinate_system",
		Value:     strconv.Quote(tag),
		Reason:    `must be "tail_to_nose" or "nose_to_tail"`,
	}
}

// Aft returns the sign of the shared axis pointing from nose to tail.
func (p Polarity) Aft() float64 {
	if p == NoseToTail {
		return 1
	}
	return -1
}

func (p Polarity) String() string {
	switch p {
	case TailToNose:
		return "tail_to_nose"
	case NoseToTail:
		return "nose_to_tail"
	default:
		return "unknown"
	}
}
