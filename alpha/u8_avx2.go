// AVX2 alpha kernels for 8-bit components: 32 components (8 RGBA or 16 LA pixels) per
// iteration, matching one 256-bit load, with the per-pixel tail below the tile width.

package alpha

func mulRowU8AVX2(s, d []uint8, nc int) {
	switch nc {
	case 4:
		i := 0
		for ; i+32 <= len(s); i += 32 {
			mulPxU8x4(s, d, i)
			mulPxU8x4(s, d, i+4)
			mulPxU8x4(s, d, i+8)
			mulPxU8x4(s, d, i+12)
			mulPxU8x4(s, d, i+16)
			mulPxU8x4(s, d, i+20)
			mulPxU8x4(s, d, i+24)
			mulPxU8x4(s, d, i+28)
		}
		for ; i+4 <= len(s); i += 4 {
			mulPxU8x4(s, d, i)
		}
	case 2:
		i := 0
		for ; i+32 <= len(s); i += 32 {
			mulPxU8x2(s, d, i)
			mulPxU8x2(s, d, i+2)
			mulPxU8x2(s, d, i+4)
			mulPxU8x2(s, d, i+6)
			mulPxU8x2(s, d, i+8)
			mulPxU8x2(s, d, i+10)
			mulPxU8x2(s, d, i+12)
			mulPxU8x2(s, d, i+14)
			mulPxU8x2(s, d, i+16)
			mulPxU8x2(s, d, i+18)
			mulPxU8x2(s, d, i+20)
			mulPxU8x2(s, d, i+22)
			mulPxU8x2(s, d, i+24)
			mulPxU8x2(s, d, i+26)
			mulPxU8x2(s, d, i+28)
			mulPxU8x2(s, d, i+30)
		}
		for ; i+2 <= len(s); i += 2 {
			mulPxU8x2(s, d, i)
		}
	default:
		mulRowU8Native(s, d, nc)
	}
}

func divRowU8AVX2(s, d []uint8, nc int) {
	t := Recip8()
	recip, p := t.Values, t.Precision
	switch nc {
	case 4:
		i := 0
		for ; i+32 <= len(s); i += 32 {
			divPxU8x4(s, d, i, recip, p)
			divPxU8x4(s, d, i+4, recip, p)
			divPxU8x4(s, d, i+8, recip, p)
			divPxU8x4(s, d, i+12, recip, p)
			divPxU8x4(s, d, i+16, recip, p)
			divPxU8x4(s, d, i+20, recip, p)
			divPxU8x4(s, d, i+24, recip, p)
			divPxU8x4(s, d, i+28, recip, p)
		}
		for ; i+4 <= len(s); i += 4 {
			divPxU8x4(s, d, i, recip, p)
		}
	case 2:
		i := 0
		for ; i+32 <= len(s); i += 32 {
			divPxU8x2(s, d, i, recip, p)
			divPxU8x2(s, d, i+2, recip, p)
			divPxU8x2(s, d, i+4, recip, p)
			divPxU8x2(s, d, i+6, recip, p)
			divPxU8x2(s, d, i+8, recip, p)
			divPxU8x2(s, d, i+10, recip, p)
			divPxU8x2(s, d, i+12, recip, p)
			divPxU8x2(s, d, i+14, recip, p)
			divPxU8x2(s, d, i+16, recip, p)
			divPxU8x2(s, d, i+18, recip, p)
			divPxU8x2(s, d, i+20, recip, p)
			divPxU8x2(s, d, i+22, recip, p)
			divPxU8x2(s, d, i+24, recip, p)
			divPxU8x2(s, d, i+26, recip, p)
			divPxU8x2(s, d, i+28, recip, p)
			divPxU8x2(s, d, i+30, recip, p)
		}
		for ; i+2 <= len(s); i += 2 {
			divPxU8x2(s, d, i, recip, p)
		}
	default:
		divRowU8Native(s, d, nc)
	}
}
