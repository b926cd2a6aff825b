package alpha

import "math/bits"

// Shared 16-bit pixel primitives. round(c*a/65535) uses the 0x8000 variant of the byte trick:
// t = c*a + 0x8000; (t + t>>16) >> 16. The divide direction multiplies by the 65536-entry
// reciprocal table at precision 33; the product needs the full 128-bit intermediate.

func mulDiv65535(c, a uint32) uint16 {
	t := c*a + 0x8000
	return uint16((t + (t >> 16)) >> 16)
}

func divRecipU16(c uint16, r uint64, p uint) uint16 {
	hi, lo := bits.Mul64(uint64(c), r)
	v := hi<<(64-p) | lo>>p
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}

func mulPxU16x4(s, d []uint16, i int) {
	a := uint32(s[i+3])
	d[i] = mulDiv65535(uint32(s[i]), a)
	d[i+1] = mulDiv65535(uint32(s[i+1]), a)
	d[i+2] = mulDiv65535(uint32(s[i+2]), a)
	d[i+3] = uint16(a)
}

func mulPxU16x2(s, d []uint16, i int) {
	a := uint32(s[i+1])
	d[i] = mulDiv65535(uint32(s[i]), a)
	d[i+1] = uint16(a)
}

func divPxU16x4(s, d []uint16, i int, recip []uint64, p uint) {
	a := s[i+3]
	if a == 0 {
		d[i], d[i+1], d[i+2], d[i+3] = 0, 0, 0, 0
		return
	}
	r := recip[a]
	d[i] = divRecipU16(s[i], r, p)
	d[i+1] = divRecipU16(s[i+1], r, p)
	d[i+2] = divRecipU16(s[i+2], r, p)
	d[i+3] = a
}

func divPxU16x2(s, d []uint16, i int, recip []uint64, p uint) {
	a := s[i+1]
	if a == 0 {
		d[i], d[i+1] = 0, 0
		return
	}
	r := recip[a]
	d[i] = divRecipU16(s[i], r, p)
	d[i+1] = a
}

func mulRowU16Native(s, d []uint16, nc int) {
	for i := 0; i+nc <= len(s); i += nc {
		a := uint32(s[i+nc-1])
		for k := 0; k < nc-1; k++ {
			d[i+k] = mulDiv65535(uint32(s[i+k]), a)
		}
		d[i+nc-1] = uint16(a)
	}
}

func divRowU16Native(s, d []uint16, nc int) {
	t := Recip16()
	for i := 0; i+nc <= len(s); i += nc {
		a := s[i+nc-1]
		if a == 0 {
			for k := 0; k < nc; k++ {
				d[i+k] = 0
			}
			continue
		}
		r := t.Values[a]
		for k := 0; k < nc-1; k++ {
			d[i+k] = divRecipU16(s[i+k], r, t.Precision)
		}
		d[i+nc-1] = a
	}
}
