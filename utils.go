package msxfont

import (
	"math"
)

// NumT is a constraint for all integers and floats
type NumT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// ConvNumber converts between numeric types and reports whether the value
// survived the conversion unchanged.
//
//	converted, ok := ConvNumber[uint8](int64(1))   // 1, true
//	converted, ok := ConvNumber[uint8](256)        // 0, false
func ConvNumber[OutT NumT, InT NumT](orig InT) (converted OutT, ok bool) {
	converted = OutT(orig)
	switch any(converted).(type) {
	case float64:
		return converted, true
	case float32:
		f64, isF64 := any(orig).(float64)
		if !isF64 {
			return converted, true
		}
		if math.Abs(f64) < math.MaxFloat32 {
			return converted, true
		}
		return 0, false
	}
	if (orig < 0) != (converted < 0) {
		return 0, false
	}
	cast := InT(converted)
	base := orig
	switch f := any(orig).(type) {
	case float64:
		base = InT(math.Trunc(f))
	case float32:
		base = InT(math.Trunc(float64(f)))
	}
	if cast == base {
		return converted, true
	}
	return 0, false
}

// glyphIndex narrows an int glyph index to the byte it addresses.
func glyphIndex(glyph int) (uint8, error) {
	g, ok := ConvNumber[uint8](glyph)
	if !ok {
		return 0, &IndexError{What: "glyph", Value: glyph, Limit: NumGlyphs}
	}
	return g, nil
}

// coord validates a pixel coordinate within a glyph.
func coord(what string, v, limit int) error {
	if v < 0 || v >= limit {
		return &IndexError{What: what, Value: v, Limit: limit}
	}
	return nil
}
