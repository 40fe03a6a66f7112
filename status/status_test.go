package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToByteBitOrder(t *testing.T) {
	r := Register{Carry: true}
	assert.Equal(t, byte(0b0000_0001), r.ToByte())

	r = Register{Negative: true}
	assert.Equal(t, byte(0b1000_0000), r.ToByte())

	r = Register{Overflow: true, Zero: true}
	assert.Equal(t, byte(0b0100_0010), r.ToByte())
}

func TestFromByteRoundTrip(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		r := FromByte(byte(v))
		assert.Equal(t, byte(v), r.ToByte(), "round-trip failed for %08b", v)
	}
}

func TestSetZN(t *testing.T) {
	cases := []struct {
		in       byte
		wantZero bool
		wantNeg  bool
	}{
		{0x00, true, false},
		{0x01, false, false},
		{0x80, false, true},
		{0xFF, false, true},
	}
	for _, c := range cases {
		var r Register
		r.SetZN(c.in)
		assert.Equal(t, c.wantZero, r.Zero, "zero for %02X", c.in)
		assert.Equal(t, c.wantNeg, r.Negative, "negative for %02X", c.in)
	}
}
