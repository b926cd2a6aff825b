// WASM-SIMD128 alpha kernels for 16-bit components: 8 components per v128 iteration.

package alpha

func mulRowU16WASM(s, d []uint16, nc int) {
	switch nc {
	case 4:
		i := 0
		for ; i+8 <= len(s); i += 8 {
			mulPxU16x4(s, d, i)
			mulPxU16x4(s, d, i+4)
		}
		for ; i+4 <= len(s); i += 4 {
			mulPxU16x4(s, d, i)
		}
	case 2:
		i := 0
		for ; i+8 <= len(s); i += 8 {
			mulPxU16x2(s, d, i)
			mulPxU16x2(s, d, i+2)
			mulPxU16x2(s, d, i+4)
			mulPxU16x2(s, d, i+6)
		}
		for ; i+2 <= len(s); i += 2 {
			mulPxU16x2(s, d, i)
		}
	default:
		mulRowU16Native(s, d, nc)
	}
}

func divRowU16WASM(s, d []uint16, nc int) {
	t := Recip16()
	recip, p := t.Values, t.Precision
	switch nc {
	case 4:
		i := 0
		for ; i+8 <= len(s); i += 8 {
			divPxU16x4(s, d, i, recip, p)
			divPxU16x4(s, d, i+4, recip, p)
		}
		for ; i+4 <= len(s); i += 4 {
			divPxU16x4(s, d, i, recip, p)
		}
	case 2:
		i := 0
		for ; i+8 <= len(s); i += 8 {
			divPxU16x2(s, d, i, recip, p)
			divPxU16x2(s, d, i+2, recip, p)
			divPxU16x2(s, d, i+4, recip, p)
			divPxU16x2(s, d, i+6, recip, p)
		}
		for ; i+2 <= len(s); i += 2 {
			divPxU16x2(s, d, i, recip, p)
		}
	default:
		divRowU16Native(s, d, nc)
	}
}
