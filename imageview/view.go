// Package imageview defines the borrowed-rectangle interfaces the resize core consumes, and a
// concrete Buffer/BufferMut implementation over a caller-owned byte slice.
//
// Rows are never owned by a view: a view borrows from a buffer whose lifetime the caller
// manages, and row data is contiguous within a row but rows themselves may be padded (stride
// may exceed width × bytes-per-pixel).
package imageview

import (
	"fmt"

	"github.com/rasterkit/fir/pixfmt"
)

// View is a borrowed, read-only rectangle over a pixel buffer.
type View interface {
	Width() int
	Height() int
	Format() pixfmt.Format
	RowStrideBytes() int
	// Row returns the bytes of row y, of length >= Width()*Format().BytesPerPixel().
	Row(y int) []byte
}

// MutableView is the exclusively-borrowed counterpart of View.
type MutableView interface {
	View
	// RowMut returns a mutable slice over row y's bytes.
	RowMut(y int) []byte
}

// Buffer is a read-only view over a byte slice owned by the caller.
type Buffer struct {
	width, height int
	format        pixfmt.Format
	stride        int
	pix           []byte
}

// BufferMut is the mutable counterpart of Buffer.
type BufferMut struct {
	Buffer
}

// New validates and constructs a read-only Buffer view.
//
// Width and height must be positive, stride must be at least width ×
// bytes-per-pixel, and the buffer must hold height × stride bytes.
func New(width, height int, format pixfmt.Format, stride int, pix []byte) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("imageview: dimensions must be positive, got %dx%d", width, height)
	}
	minStride := width * format.BytesPerPixel()
	if stride < minStride {
		return nil, fmt.Errorf("%w: row_stride_bytes %d < width*bytes_per_pixel %d", ErrBufferSizeInvalid, stride, minStride)
	}
	if len(pix) < height*stride {
		return nil, fmt.Errorf("%w: buffer has %d bytes, need %d", ErrBufferSizeInvalid, len(pix), height*stride)
	}
	return &Buffer{width: width, height: height, format: format, stride: stride, pix: pix}, nil
}

// NewMut constructs a mutable view over the same invariants as New.
func NewMut(width, height int, format pixfmt.Format, stride int, pix []byte) (*BufferMut, error) {
	b, err := New(width, height, format, stride, pix)
	if err != nil {
		return nil, err
	}
	return &BufferMut{Buffer: *b}, nil
}

// NewFromRows builds a Buffer from a slice of independently-allocated rows, each of which
// must be exactly width*bytes-per-pixel long.
func NewFromRows(rows [][]byte, width, height int, format pixfmt.Format) (*Buffer, error) {
	if len(rows) != height {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidRowsCount, len(rows), height)
	}
	rowLen := width * format.BytesPerPixel()
	flat := make([]byte, height*rowLen)
	for y, r := range rows {
		if len(r) != rowLen {
			return nil, fmt.Errorf("%w: row %d has %d bytes, want %d", ErrInvalidRowSize, y, len(r), rowLen)
		}
		copy(flat[y*rowLen:], r)
	}
	return New(width, height, format, rowLen, flat)
}

func (b *Buffer) Width() int                  { return b.width }
func (b *Buffer) Height() int                 { return b.height }
func (b *Buffer) Format() pixfmt.Format       { return b.format }
func (b *Buffer) RowStrideBytes() int         { return b.stride }
func (b *Buffer) Row(y int) []byte            { return b.pix[y*b.stride : y*b.stride+b.width*b.format.BytesPerPixel()] }
func (b *BufferMut) RowMut(y int) []byte      { return b.Row(y) }

// Rows returns a slice of all row slices, in order. Convenience for kernels that want to index
// rows directly rather than calling Row repeatedly.
func (b *Buffer) Rows() [][]byte {
	out := make([][]byte, b.height)
	for y := range out {
		out[y] = b.Row(y)
	}
	return out
}

// FourRows returns rows y, y+1, y+2, y+3 as a fixed-size tuple, used by horizontal convolution
// kernels that unroll across four destination rows at once. Callers must ensure
// y+3 < Height().
func (b *Buffer) FourRows(y int) [4][]byte {
	return [4][]byte{b.Row(y), b.Row(y + 1), b.Row(y + 2), b.Row(y + 3)}
}
