// Package pixfmt enumerates the pixel formats the resize engine understands and provides
// reinterpretation between a pixel slice and its component slice.
package pixfmt

import "fmt"

// ComponentType is the scalar type backing one component of a pixel.
type ComponentType uint8

const (
	U8 ComponentType = iota
	U16
	I32
	F32
)

// ByteWidth returns the size in bytes of a single component of this type.
func (c ComponentType) ByteWidth() int {
	switch c {
	case U8:
		return 1
	case U16:
		return 2
	case I32, F32:
		return 4
	default:
		panic(fmt.Sprintf("pixfmt: unknown component type %d", c))
	}
}

func (c ComponentType) String() string {
	switch c {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case I32:
		return "I32"
	case F32:
		return "F32"
	default:
		return "Unknown"
	}
}

// Format is a tagged (component type, component count) pair. The zero value is invalid; use one
// of the package-level Format constants.
type Format struct {
	component ComponentType
	count     uint8
	name      string
}

// Admissible pixel formats. FormatI32 and FormatF32 are single-channel formats meant for
// non-color raster data such as depth maps; only FormatF32 extends to the multi-channel
// FormatF32x2..FormatF32x4 layouts.
var (
	FormatU8     = Format{U8, 1, "U8"}
	FormatU8x2   = Format{U8, 2, "U8x2"}
	FormatU8x3   = Format{U8, 3, "U8x3"}
	FormatU8x4   = Format{U8, 4, "U8x4"}
	FormatU16    = Format{U16, 1, "U16"}
	FormatU16x2  = Format{U16, 2, "U16x2"}
	FormatU16x3  = Format{U16, 3, "U16x3"}
	FormatU16x4  = Format{U16, 4, "U16x4"}
	FormatI32    = Format{I32, 1, "I32"}
	FormatF32    = Format{F32, 1, "F32"}
	FormatF32x2  = Format{F32, 2, "F32x2"}
	FormatF32x3  = Format{F32, 3, "F32x3"}
	FormatF32x4  = Format{F32, 4, "F32x4"}
)

// All lists every admissible format, in declaration order. Useful for table-driven tests that
// must exercise every tag.
var All = []Format{
	FormatU8, FormatU8x2, FormatU8x3, FormatU8x4,
	FormatU16, FormatU16x2, FormatU16x3, FormatU16x4,
	FormatI32,
	FormatF32, FormatF32x2, FormatF32x3, FormatF32x4,
}

// ComponentType reports the scalar type of one component.
func (f Format) ComponentType() ComponentType { return f.component }

// ComponentCount reports the number of interleaved components per pixel (1, 2, 3 or 4).
func (f Format) ComponentCount() int { return int(f.count) }

// BytesPerPixel reports component-count × component-byte-width.
func (f Format) BytesPerPixel() int { return int(f.count) * f.component.ByteWidth() }

// HasAlpha reports whether the last component of this format is an alpha channel, i.e. the
// format has 2 or 4 components. Components are laid out color channels first, alpha last.
func (f Format) HasAlpha() bool { return f.count == 2 || f.count == 4 }

// IsInteger reports whether this format's components are fixed-point (U8 or U16), as opposed to
// float or signed-int formats that bypass the fixed-point normalizer.
func (f Format) IsInteger() bool { return f.component == U8 || f.component == U16 }

// ComponentMax returns the maximum representable value of one component, as a float64. For F32
// this is 1.0, matching the alpha engine's normalized range.
func (f Format) ComponentMax() float64 {
	switch f.component {
	case U8:
		return 255
	case U16:
		return 65535
	case F32:
		return 1
	default:
		panic(fmt.Sprintf("pixfmt: %s has no component max", f))
	}
}

func (f Format) String() string { return f.name }

// Parse maps a format's String() back to the Format value. Neither the core nor the example
// CLI calls it.
func Parse(s string) (Format, bool) {
	for _, f := range All {
		if f.name == s {
			return f, true
		}
	}
	return Format{}, false
}

// Equal reports whether two formats are the same tag.
func (f Format) Equal(o Format) bool { return f.component == o.component && f.count == o.count }
