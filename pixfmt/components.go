package pixfmt

import (
	"encoding/binary"
	"math"
)

// U8Components reinterprets a row's raw bytes as its U8 components. Works for any component
// count; the caller is expected to already know the format.
func U8Components(row []byte) []uint8 {
	return row
}

// U16Components reinterprets a row's raw bytes as 16-bit components. Only component order is
// defined by the pixel layout, not byte order; this decodes little-endian, the overwhelmingly
// common case on the architectures this engine targets.
func U16Components(row []byte) []uint16 {
	out := make([]uint16, len(row)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(row[i*2:])
	}
	return out
}

// PutU16Components writes 16-bit components back into a row's raw bytes.
func PutU16Components(row []byte, vals []uint16) {
	for i, v := range vals {
		binary.LittleEndian.PutUint16(row[i*2:], v)
	}
}

// I32Components reinterprets a row's raw bytes as native-endian signed 32-bit components.
func I32Components(row []byte) []int32 {
	out := make([]int32, len(row)/4)
	for i := range out {
		out[i] = int32(binary.NativeEndian.Uint32(row[i*4:]))
	}
	return out
}

// PutI32Components writes signed 32-bit components back into a row's raw bytes.
func PutI32Components(row []byte, vals []int32) {
	for i, v := range vals {
		binary.NativeEndian.PutUint32(row[i*4:], uint32(v))
	}
}

// F32Components reinterprets a row's raw bytes as IEEE 754 binary32 components.
func F32Components(row []byte) []float32 {
	out := make([]float32, len(row)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(row[i*4:]))
	}
	return out
}

// PutF32Components writes float32 components back into a row's raw bytes.
func PutF32Components(row []byte, vals []float32) {
	for i, v := range vals {
		binary.LittleEndian.PutUint32(row[i*4:], math.Float32bits(v))
	}
}
