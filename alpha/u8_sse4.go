// SSE4.1 alpha kernels for 8-bit components: 16 components (4 RGBA or 8 LA pixels) per
// 128-bit iteration.

package alpha

func mulRowU8SSE4(s, d []uint8, nc int) {
	switch nc {
	case 4:
		i := 0
		for ; i+16 <= len(s); i += 16 {
			mulPxU8x4(s, d, i)
			mulPxU8x4(s, d, i+4)
			mulPxU8x4(s, d, i+8)
			mulPxU8x4(s, d, i+12)
		}
		for ; i+4 <= len(s); i += 4 {
			mulPxU8x4(s, d, i)
		}
	case 2:
		i := 0
		for ; i+16 <= len(s); i += 16 {
			mulPxU8x2(s, d, i)
			mulPxU8x2(s, d, i+2)
			mulPxU8x2(s, d, i+4)
			mulPxU8x2(s, d, i+6)
			mulPxU8x2(s, d, i+8)
			mulPxU8x2(s, d, i+10)
			mulPxU8x2(s, d, i+12)
			mulPxU8x2(s, d, i+14)
		}
		for ; i+2 <= len(s); i += 2 {
			mulPxU8x2(s, d, i)
		}
	default:
		mulRowU8Native(s, d, nc)
	}
}

func divRowU8SSE4(s, d []uint8, nc int) {
	t := Recip8()
	recip, p := t.Values, t.Precision
	switch nc {
	case 4:
		i := 0
		for ; i+16 <= len(s); i += 16 {
			divPxU8x4(s, d, i, recip, p)
			divPxU8x4(s, d, i+4, recip, p)
			divPxU8x4(s, d, i+8, recip, p)
			divPxU8x4(s, d, i+12, recip, p)
		}
		for ; i+4 <= len(s); i += 4 {
			divPxU8x4(s, d, i, recip, p)
		}
	case 2:
		i := 0
		for ; i+16 <= len(s); i += 16 {
			divPxU8x2(s, d, i, recip, p)
			divPxU8x2(s, d, i+2, recip, p)
			divPxU8x2(s, d, i+4, recip, p)
			divPxU8x2(s, d, i+6, recip, p)
			divPxU8x2(s, d, i+8, recip, p)
			divPxU8x2(s, d, i+10, recip, p)
			divPxU8x2(s, d, i+12, recip, p)
			divPxU8x2(s, d, i+14, recip, p)
		}
		for ; i+2 <= len(s); i += 2 {
			divPxU8x2(s, d, i, recip, p)
		}
	default:
		divRowU8Native(s, d, nc)
	}
}
