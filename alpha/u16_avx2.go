// AVX2 alpha kernels for 16-bit components: 16 components (4 RGBA or 8 LA pixels) per
// 256-bit iteration.

package alpha

func mulRowU16AVX2(s, d []uint16, nc int) {
	switch nc {
	case 4:
		i := 0
		for ; i+16 <= len(s); i += 16 {
			mulPxU16x4(s, d, i)
			mulPxU16x4(s, d, i+4)
			mulPxU16x4(s, d, i+8)
			mulPxU16x4(s, d, i+12)
		}
		for ; i+4 <= len(s); i += 4 {
			mulPxU16x4(s, d, i)
		}
	case 2:
		i := 0
		for ; i+16 <= len(s); i += 16 {
			mulPxU16x2(s, d, i)
			mulPxU16x2(s, d, i+2)
			mulPxU16x2(s, d, i+4)
			mulPxU16x2(s, d, i+6)
			mulPxU16x2(s, d, i+8)
			mulPxU16x2(s, d, i+10)
			mulPxU16x2(s, d, i+12)
			mulPxU16x2(s, d, i+14)
		}
		for ; i+2 <= len(s); i += 2 {
			mulPxU16x2(s, d, i)
		}
	default:
		mulRowU16Native(s, d, nc)
	}
}

func divRowU16AVX2(s, d []uint16, nc int) {
	t := Recip16()
	recip, p := t.Values, t.Precision
	switch nc {
	case 4:
		i := 0
		for ; i+16 <= len(s); i += 16 {
			divPxU16x4(s, d, i, recip, p)
			divPxU16x4(s, d, i+4, recip, p)
			divPxU16x4(s, d, i+8, recip, p)
			divPxU16x4(s, d, i+12, recip, p)
		}
		for ; i+4 <= len(s); i += 4 {
			divPxU16x4(s, d, i, recip, p)
		}
	case 2:
		i := 0
		for ; i+16 <= len(s); i += 16 {
			divPxU16x2(s, d, i, recip, p)
			divPxU16x2(s, d, i+2, recip, p)
			divPxU16x2(s, d, i+4, recip, p)
			divPxU16x2(s, d, i+6, recip, p)
			divPxU16x2(s, d, i+8, recip, p)
			divPxU16x2(s, d, i+10, recip, p)
			divPxU16x2(s, d, i+12, recip, p)
			divPxU16x2(s, d, i+14, recip, p)
		}
		for ; i+2 <= len(s); i += 2 {
			divPxU16x2(s, d, i, recip, p)
		}
	default:
		divRowU16Native(s, d, nc)
	}
}
