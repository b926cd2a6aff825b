package imageview

import "github.com/rasterkit/fir/pixfmt"

// rowRange is a borrowed-rectangle view over a contiguous row range of a parent view, used to
// hand each worker of an intra-call parallel resize a disjoint slice of destination
// rows without copying.
type rowRange struct {
	parent View
	offset int
	height int
}

func (r rowRange) Width() int                  { return r.parent.Width() }
func (r rowRange) Height() int                 { return r.height }
func (r rowRange) Format() pixfmt.Format        { return r.parent.Format() }
func (r rowRange) RowStrideBytes() int          { return r.parent.RowStrideBytes() }
func (r rowRange) Row(y int) []byte             { return r.parent.Row(y + r.offset) }

// Sub returns a read-only view over rows [offset, offset+height) of v.
func Sub(v View, offset, height int) View {
	return rowRange{parent: v, offset: offset, height: height}
}

type rowRangeMut struct {
	rowRange
	parentMut MutableView
}

func (r rowRangeMut) RowMut(y int) []byte { return r.parentMut.RowMut(y + r.offset) }

// SubMut returns a mutable view over rows [offset, offset+height) of v.
func SubMut(v MutableView, offset, height int) MutableView {
	return rowRangeMut{rowRange: rowRange{parent: v, offset: offset, height: height}, parentMut: v}
}
