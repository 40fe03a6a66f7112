// Package status models the 6502 processor status register (the P
// register): eight named flags, packable to and from a single byte in
// NV-BDIZC bit order.
package status

import "nesemu/mask"

// Register holds the eight 6502 status flags. Unused is bit 5, which real
// hardware always reads back as 1 but which software can still push/pull
// through the stack; it is preserved here rather than hardcoded so that
// FromByte(r.ToByte()) round-trips for any input value.
type Register struct {
	Negative  bool // N, bit 7
	Overflow  bool // V, bit 6
	Unused    bool // _, bit 5
	Break     bool // B, bit 4
	Decimal   bool // D, bit 3
	Interrupt bool // I, bit 2
	Zero      bool // Z, bit 1
	Carry     bool // C, bit 0
}

// ToByte packs the flags into NV_BDIZC bit order. mask.I1 is the MSB
// (bit 7, N) and mask.I8 is the LSB (bit 0, C).
func (r Register) ToByte() byte {
	var b byte
	if r.Negative {
		b = mask.Set(b, mask.I1, 1)
	}
	if r.Overflow {
		b = mask.Set(b, mask.I2, 1)
	}
	if r.Unused {
		b = mask.Set(b, mask.I3, 1)
	}
	if r.Break {
		b = mask.Set(b, mask.I4, 1)
	}
	if r.Decimal {
		b = mask.Set(b, mask.I5, 1)
	}
	if r.Interrupt {
		b = mask.Set(b, mask.I6, 1)
	}
	if r.Zero {
		b = mask.Set(b, mask.I7, 1)
	}
	if r.Carry {
		b = mask.Set(b, mask.I8, 1)
	}
	return b
}

// FromByte masks v to 8 bits and extracts the flags in NV_BDIZC order.
func FromByte(v byte) Register {
	v &= 0xFF
	return Register{
		Negative:  mask.IsSet(v, mask.I1),
		Overflow:  mask.IsSet(v, mask.I2),
		Unused:    mask.IsSet(v, mask.I3),
		Break:     mask.IsSet(v, mask.I4),
		Decimal:   mask.IsSet(v, mask.I5),
		Interrupt: mask.IsSet(v, mask.I6),
		Zero:      mask.IsSet(v, mask.I7),
		Carry:     mask.IsSet(v, mask.I8),
	}
}

// SetZN sets Zero and Negative from the low 8 bits of v, the shared flag
// update used by nearly every load, transfer, and arithmetic instruction.
func (r *Register) SetZN(v byte) {
	r.Zero = v == 0
	r.Negative = mask.IsSet(v, mask.I1)
}
