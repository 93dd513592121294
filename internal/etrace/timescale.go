package etrace

import "github.com/picoml/picort/errors"

// TimeScale names the unit timestamps in a trace are expressed in. Traces
// produced on-device may count cycles or microseconds; the inspector converts
// them into the scale the reader asked for.
type TimeScale string

// Recognized time scales. Cycles cannot be converted without a clock rate
// and are only valid when source and target agree.
const (
	ScaleNS     TimeScale = "ns"
	ScaleUS     TimeScale = "us"
	ScaleMS     TimeScale = "ms"
	ScaleS      TimeScale = "s"
	ScaleCycles TimeScale = "cycles"
)

// nanosPer maps each convertible scale to its size in nanoseconds.
var nanosPer = map[TimeScale]float64{
	ScaleNS: 1,
	ScaleUS: 1e3,
	ScaleMS: 1e6,
	ScaleS:  1e9,
}

// ParseTimeScale validates a user-supplied scale name.
func ParseTimeScale(s string) (TimeScale, error) {
	switch ts := TimeScale(s); ts {
	case ScaleNS, ScaleUS, ScaleMS, ScaleS, ScaleCycles:
		return ts, nil
	default:
		return "", errors.InvalidArgumentf("unknown time scale %q", s)
	}
}

// ConvertTime re-expresses v from one time scale in another.
func ConvertTime(v float64, from, to TimeScale) (float64, error) {
	if from == to {
		return v, nil
	}
	fromNS, ok := nanosPer[from]
	if !ok {
		return 0, errors.InvalidArgumentf("cannot convert from %q without a clock rate", from)
	}
	toNS, ok := nanosPer[to]
	if !ok {
		return 0, errors.InvalidArgumentf("cannot convert to %q without a clock rate", to)
	}
	return v * fromNS / toNS, nil
}
